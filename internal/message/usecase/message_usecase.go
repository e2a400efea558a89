package usecase

import (
	"context"
	"log"
	"strings"

	"social-backend/internal/message/domain"
	"social-backend/internal/message/repository"
	"social-backend/internal/notification"
)

// MessageUsecase defines the interface for direct messages
type MessageUsecase interface {
	// Send stores the message, then notifies the receiver
	Send(ctx context.Context, sender, receiver, content string) (*domain.Message, error)
	Conversation(ctx context.Context, a, b string) ([]*domain.Message, error)
}

type messageUsecase struct {
	messageRepo repository.MessageRepository
	publisher   notification.Publisher
}

func NewMessageUsecase(messageRepo repository.MessageRepository, publisher notification.Publisher) MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
		publisher:   publisher,
	}
}

func (u *messageUsecase) Send(ctx context.Context, sender, receiver, content string) (*domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}
	sender, receiver = strings.TrimSpace(sender), strings.TrimSpace(receiver)
	if sender == "" || receiver == "" {
		return nil, domain.ErrEmptyParticipant
	}

	message := &domain.Message{
		Sender:   sender,
		Receiver: receiver,
		Content:  content,
	}
	if err := u.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if u.publisher != nil {
		err := u.publisher.Publish(ctx, notification.Event{
			Type:       notification.EventMessageSent,
			Actor:      message.Sender,
			Recipient:  message.Receiver,
			ResourceID: message.ID,
			Content:    message.Content,
			CreatedAt:  message.CreatedAt,
		})
		if err != nil {
			log.Printf("[MessageUsecase] Failed to publish message %s: %v", message.ID, err)
		}
	}
	return message, nil
}

func (u *messageUsecase) Conversation(ctx context.Context, a, b string) ([]*domain.Message, error) {
	return u.messageRepo.Conversation(ctx, a, b)
}
