package delivery

import (
	"net/http"

	"social-backend/internal/post/domain"
	postdto "social-backend/internal/post/dto"
	"social-backend/internal/post/usecase"
	"social-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// PostHandler handles post and comment HTTP requests
type PostHandler struct {
	postUsecase usecase.PostUsecase
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postUsecase usecase.PostUsecase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
	}
}

// CreatePost creates a post and triggers the notification fan-out
// POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req postdto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUsecase.CreatePost(c.Request.Context(), req.Content, req.Username)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListPosts returns all posts, newest first
// GET /posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUsecase.ListPosts(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	if posts == nil {
		posts = []*domain.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// UpdatePost replaces the content of a post
// PUT /posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req postdto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUsecase.UpdatePost(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post
// DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUsecase.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// CreateComment adds a comment, optionally replying to another comment
// POST /api/posts/:postId/comments
func (h *PostHandler) CreateComment(c *gin.Context) {
	var req postdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.postUsecase.CreateComment(c.Request.Context(), c.Param("postId"), req.Content, req.ParentID, req.Username)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments returns the comments of a post, newest first
// GET /api/posts/:postId/comments
func (h *PostHandler) ListComments(c *gin.Context) {
	comments, err := h.postUsecase.ListComments(c.Request.Context(), c.Param("postId"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	if comments == nil {
		comments = []*domain.Comment{}
	}
	c.JSON(http.StatusOK, comments)
}
