package domain

import "time"

// PushToken is one device token registered by a user. The (user_id, token)
// pair is unique, so a user's token set never holds duplicates.
type PushToken struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_push_tokens_user_token;not null"`
	Token     string    `json:"-" gorm:"uniqueIndex:idx_push_tokens_user_token;not null"`
	CreatedAt time.Time `json:"created_at"`
}
