package repository

import (
	"context"
	"time"

	authdomain "social-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pushTokenRepository implements PushTokenRepository interface
type pushTokenRepository struct {
	db *gorm.DB
}

// NewPushTokenRepository creates a new instance of pushTokenRepository
func NewPushTokenRepository(db *gorm.DB) PushTokenRepository {
	return &pushTokenRepository{
		db: db,
	}
}

// AddToken appends the token to the user's set (atomic insert-if-absent).
// Concurrent logins from several devices never lose or duplicate a token.
func (r *pushTokenRepository) AddToken(ctx context.Context, userID, token string) error {
	pushToken := &authdomain.PushToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     token,
		CreatedAt: time.Now(),
	}

	// INSERT ... ON CONFLICT (user_id, token) DO NOTHING
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
		DoNothing: true,
	}).Create(pushToken).Error
}

func (r *pushTokenRepository) TokensFor(ctx context.Context, userIDs []string) (map[string][]string, error) {
	result := make(map[string][]string)
	if len(userIDs) == 0 {
		return result, nil
	}

	var tokens []authdomain.PushToken
	err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Order("created_at ASC").Find(&tokens).Error
	if err != nil {
		return nil, err
	}

	for _, t := range tokens {
		result[t.UserID] = append(result[t.UserID], t.Token)
	}
	return result, nil
}
