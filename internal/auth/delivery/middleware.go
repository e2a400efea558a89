package delivery

import (
	"log"
	"net/http"

	authdomain "social-backend/internal/auth/domain"
	"social-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// LoadSession resolves the session cookie once per request and stores the
// session (if any) in the gin context. It never rejects a request.
func LoadSession(authUsecase usecase.AuthUsecase, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieName)
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		sess, err := authUsecase.CurrentSession(c.Request.Context(), cookie)
		if err != nil {
			log.Printf("[Session] Failed to resolve session: %v", err)
		} else if sess != nil {
			c.Set(sessionContextKey, sess)
		}
		c.Next()
	}
}

// RequireSession rejects requests that LoadSession found no session for.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFromContext(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authdomain.ErrNotAuthenticated.Message})
			c.Abort()
			return
		}
		c.Next()
	}
}

func SessionFromContext(c *gin.Context) *authdomain.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	sess, _ := value.(*authdomain.Session)
	return sess
}
