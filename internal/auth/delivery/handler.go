package delivery

import (
	"errors"
	"net/http"
	"time"

	authdomain "social-backend/internal/auth/domain"
	authdto "social-backend/internal/auth/dto"
	"social-backend/internal/auth/usecase"
	"social-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// CookieConfig controls the session cookie written on login.
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	cookie      CookieConfig
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		cookie:      cookie,
	}
}

// Register creates an account
// POST /users
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.authUsecase.Register(c.Request.Context(), &req); err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, authdto.MessageResponse{Message: "User registered successfully"})
}

// Login checks credentials and opens a session
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	if !result.OK {
		c.JSON(http.StatusOK, authdto.LoginResponse{Login: false})
		return
	}

	h.setSessionCookie(c, result.Cookie, int(h.cookie.MaxAge.Seconds()))
	c.JSON(http.StatusOK, authdto.LoginResponse{Login: true, User: result.User})
}

// Logout destroys the session and clears the cookie
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(h.cookie.Name); err == nil && cookie != "" {
		if err := h.authUsecase.Logout(c.Request.Context(), cookie); err != nil && !errors.Is(err, authdomain.ErrSessionNotFound) {
			apperror.Respond(c, err)
			return
		}
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, authdto.MessageResponse{Message: "Logged out successfully"})
}

// Session reports whether the request carries a live session
// GET /
func (h *AuthHandler) Session(c *gin.Context) {
	sess := SessionFromContext(c)
	if sess == nil {
		c.JSON(http.StatusOK, authdto.SessionResponse{Valid: false})
		return
	}
	c.JSON(http.StatusOK, authdto.SessionResponse{Valid: true, Name: sess.Name})
}

// ListUsers returns id and name of every user
// GET /users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authUsecase.ListUsers(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateToken registers a device push token for a user
// POST /update-token
func (h *AuthHandler) UpdateToken(c *gin.Context) {
	var req authdto.UpdateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.UpdatePushToken(c.Request.Context(), req.Name, req.PushToken); err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.MessageResponse{Message: "Push token updated successfully"})
}

// ChangePassword replaces the password of the logged in user
// PUT /password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	sess := SessionFromContext(c)
	if sess == nil {
		apperror.Respond(c, authdomain.ErrNotAuthenticated)
		return
	}

	var req authdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), sess.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.MessageResponse{Message: "Password updated successfully"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
