package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	authDelivery "social-backend/internal/auth/delivery"
	authdto "social-backend/internal/auth/dto"
	authUsecase "social-backend/internal/auth/usecase"
	messageDelivery "social-backend/internal/message/delivery"
	messageUsecase "social-backend/internal/message/usecase"
	postDelivery "social-backend/internal/post/delivery"
	postUsecase "social-backend/internal/post/usecase"
	"social-backend/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	postUsecase    postUsecase.PostUsecase
	messageUsecase messageUsecase.MessageUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, postUc postUsecase.PostUsecase, messageUc messageUsecase.MessageUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		postUsecase:    postUc,
		messageUsecase: messageUc,
		config:         cfg,
	}
}

// Engine builds the gin engine with middleware and routes.
func (h *Handler) Engine() (*gin.Engine, error) {
	if err := authdto.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	origins := h.config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(authDelivery.LoadSession(h.authUsecase, h.config.SessionCookieName))

	authHandler := authDelivery.NewAuthHandler(h.authUsecase, authDelivery.CookieConfig{
		Name:   h.config.SessionCookieName,
		Secure: h.config.CookieSecure,
		MaxAge: h.config.SessionTTL,
	})
	postHandler := postDelivery.NewPostHandler(h.postUsecase)
	messageHandler := messageDelivery.NewMessageHandler(h.messageUsecase)

	SetupRoutes(r, authHandler, postHandler, messageHandler)
	return r, nil
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (h *Handler) Start(ctx context.Context, addr string) error {
	r, err := h.Engine()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
