package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	api "social-backend/cmd/api"
	authdomain "social-backend/internal/auth/domain"
	authRepo "social-backend/internal/auth/repository"
	"social-backend/internal/auth/session"
	authUsecase "social-backend/internal/auth/usecase"
	messagedomain "social-backend/internal/message/domain"
	messageRepo "social-backend/internal/message/repository"
	messageUsecase "social-backend/internal/message/usecase"
	"social-backend/internal/notification"
	postdomain "social-backend/internal/post/domain"
	postRepo "social-backend/internal/post/repository"
	postUsecase "social-backend/internal/post/usecase"
	"social-backend/pkg/config"
	"social-backend/pkg/database"
	"social-backend/pkg/fcm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.PushToken{}, &authdomain.Session{}, &postdomain.Post{}, &postdomain.Comment{}, &messagedomain.Message{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	pushTokenRepo := authRepo.NewPushTokenRepository(db)
	sessionRepo := authRepo.NewSessionRepository(db)
	postRepository := postRepo.NewGormPostRepository(db)
	commentRepository := postRepo.NewGormCommentRepository(db)
	messageRepository := messageRepo.NewGormMessageRepository(db)

	// Sessions
	sessionStore := session.NewStore(sessionRepo, cfg.SessionSecret, cfg.SessionTTL)
	janitor := session.NewJanitor(sessionRepo, cfg.SessionCleanupInterval)
	janitor.Start()
	defer janitor.Stop()

	// Initialize FCM Client (optional, the app works without push)
	var gateway notification.Gateway
	if cfg.FirebaseCredentials != "" {
		fcmClient, err := fcm.NewClient(ctx, cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
		} else {
			gateway = fcmClient
		}
	} else {
		log.Printf("[WARN] No Firebase credentials configured, FCM disabled")
	}

	dispatcher := notification.NewDispatcher(gateway, fcm.MaxMulticastTokens, cfg.PushTimeout)
	notifService := notification.NewService(userRepo, pushTokenRepo, dispatcher)

	// Pub/Sub carries events between instances when configured; otherwise
	// events are handled by in-process workers
	var queue notification.Queue
	if cfg.GoogleProjectID != "" {
		topicName := cfg.GooglePubSubTopic
		if parts := strings.Split(topicName, "/"); len(parts) > 1 {
			topicName = parts[len(parts)-1]
		}
		pubsubQueue, err := notification.NewPubSubQueue(ctx, cfg.GoogleProjectID, topicName, cfg.GoogleCredentials, notifService.Handle)
		if err != nil {
			log.Printf("[ERROR] Failed to initialize Pub/Sub queue, falling back to workers: %v", err)
		} else {
			go func() {
				if err := pubsubQueue.Start(ctx); err != nil {
					log.Printf("[PubSub] Consumer stopped: %v", err)
				}
			}()
			queue = pubsubQueue
		}
	}
	if queue == nil {
		workerQueue := notification.NewWorkerQueue(notifService.Handle, cfg.NotificationWorkers, cfg.NotificationQueueSize)
		workerQueue.Start()
		queue = workerQueue
	}
	notifService.SetQueue(queue)
	defer queue.Stop()

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, pushTokenRepo, sessionStore)
	postUsecaseInstance := postUsecase.NewPostUsecase(postRepository, commentRepository, notifService)
	messageUsecaseInstance := messageUsecase.NewMessageUsecase(messageRepository, notifService)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, postUsecaseInstance, messageUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(ctx, ":"+cfg.Port); err != nil {
		log.Printf("Server error: %v", err)
	}
}
