package repository

import (
	"context"
	"time"

	"social-backend/internal/message/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormMessageRepository implements MessageRepository using GORM
type gormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GORM-based MessageRepository
func NewGormMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

func (r *gormMessageRepository) Create(ctx context.Context, message *domain.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *gormMessageRepository) Conversation(ctx context.Context, a, b string) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.WithContext(ctx).
		Where("(sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)", a, b, b, a).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
