package domain

import (
	"time"

	"social-backend/pkg/apperror"
)

// Message is a direct message between two display names. Messages are
// never edited or deleted.
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Sender    string    `json:"sender" gorm:"index:idx_messages_pair;not null"`
	Receiver  string    `json:"receiver" gorm:"index:idx_messages_pair;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

var (
	ErrEmptyContent     = apperror.New(apperror.KindValidation, "content must not be empty")
	ErrEmptyParticipant = apperror.New(apperror.KindValidation, "sender and receiver must not be empty")
)
