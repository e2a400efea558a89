package repository

import (
	"context"

	"social-backend/internal/message/domain"
)

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error

	// Conversation returns messages exchanged between a and b in either
	// direction, oldest first
	Conversation(ctx context.Context, a, b string) ([]*domain.Message, error)
}
