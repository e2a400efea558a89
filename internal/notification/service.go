package notification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	authrepo "social-backend/internal/auth/repository"
)

var ErrNoQueue = errors.New("notification queue not configured")

// Service turns content events into push notifications. Publish hands the
// event to a queue; HandleEvent runs on the queue's side.
type Service struct {
	userRepo   authrepo.UserRepository
	tokenRepo  authrepo.PushTokenRepository
	dispatcher *Dispatcher
	queue      Queue
	timeout    time.Duration
}

func NewService(userRepo authrepo.UserRepository, tokenRepo authrepo.PushTokenRepository, dispatcher *Dispatcher) *Service {
	return &Service{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		dispatcher: dispatcher,
		timeout:    time.Minute,
	}
}

// SetQueue sets the queue Publish enqueues to
func (s *Service) SetQueue(queue Queue) {
	s.queue = queue
}

func (s *Service) Publish(ctx context.Context, event Event) error {
	if s.queue == nil {
		return ErrNoQueue
	}
	return s.queue.Enqueue(ctx, event)
}

// Handle is the queue callback. Failures are logged only.
func (s *Service) Handle(ctx context.Context, event Event) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	report, err := s.HandleEvent(ctx, event)
	if err != nil {
		log.Printf("[Notification] Failed to handle %s event %s: %v", event.Type, event.ResourceID, err)
		return
	}
	log.Printf("[Notification] %s %s: sent %d in %d batches, %d failed batches",
		event.Type, event.ResourceID, report.Sent, report.Batches, len(report.FailedBatches))
}

// HandleEvent resolves the recipients of event and dispatches to their tokens.
func (s *Service) HandleEvent(ctx context.Context, event Event) (*DispatchReport, error) {
	userIDs, err := s.recipientIDs(ctx, event)
	if err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return &DispatchReport{}, nil
	}

	tokensByUser, err := s.tokenRepo.TokensFor(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load push tokens: %w", err)
	}

	var tokens []string
	for _, id := range userIDs {
		tokens = append(tokens, tokensByUser[id]...)
	}
	if len(tokens) == 0 {
		return &DispatchReport{}, nil
	}

	report := s.dispatcher.Notify(ctx, tokens, buildPayload(event))
	return &report, nil
}

func (s *Service) recipientIDs(ctx context.Context, event Event) ([]string, error) {
	switch event.Type {
	case EventPostCreated:
		users, err := s.userRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		// Posts carry only the author's display name, so every account with
		// that name is treated as the author and skipped.
		var ids []string
		for _, user := range users {
			if user.Name != event.Actor {
				ids = append(ids, user.ID)
			}
		}
		return ids, nil

	case EventCommentCreated, EventMessageSent:
		if event.Recipient == "" || event.Recipient == event.Actor {
			return nil, nil
		}
		users, err := s.userRepo.FindByName(ctx, event.Recipient)
		if err != nil {
			return nil, fmt.Errorf("failed to find recipient: %w", err)
		}
		ids := make([]string, 0, len(users))
		for _, user := range users {
			ids = append(ids, user.ID)
		}
		return ids, nil

	default:
		return nil, fmt.Errorf("unknown event type %q", event.Type)
	}
}

func buildPayload(event Event) Payload {
	payload := Payload{
		Body: truncate(event.Content, 100),
		Data: map[string]string{
			"type":   event.Type,
			"id":     event.ResourceID,
			"sender": event.Actor,
		},
	}

	switch event.Type {
	case EventPostCreated:
		payload.Title = "New post from " + event.Actor
		payload.Data["click_action"] = "/posts/" + event.ResourceID
	case EventCommentCreated:
		payload.Title = event.Actor + " commented on your post"
		payload.Data["click_action"] = "/posts/" + event.ResourceID
	case EventMessageSent:
		payload.Title = "New message from " + event.Actor
		payload.Data["click_action"] = "/messages/" + event.Actor
	}
	return payload
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
