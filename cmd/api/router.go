package api

import (
	"net/http"

	authDelivery "social-backend/internal/auth/delivery"
	messageDelivery "social-backend/internal/message/delivery"
	postDelivery "social-backend/internal/post/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authHandler *authDelivery.AuthHandler, postHandler *postDelivery.PostHandler, messageHandler *messageDelivery.MessageHandler) {
	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Session and account routes
	r.GET("/", authHandler.Session)
	r.POST("/users", authHandler.Register)
	r.GET("/users", authHandler.ListUsers)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.POST("/update-token", authHandler.UpdateToken)
	r.PUT("/password", authDelivery.RequireSession(), authHandler.ChangePassword)

	// Post routes
	r.POST("/posts", postHandler.CreatePost)
	r.GET("/posts", postHandler.ListPosts)
	r.PUT("/posts/:id", postHandler.UpdatePost)
	r.DELETE("/posts/:id", postHandler.DeletePost)

	// Comment routes
	comments := r.Group("/api/posts/:postId/comments")
	{
		comments.POST("", postHandler.CreateComment)
		comments.GET("", postHandler.ListComments)
	}

	// Direct message routes
	r.POST("/messages", messageHandler.Send)
	r.GET("/messages/:sender/:receiver", messageHandler.Conversation)
}
