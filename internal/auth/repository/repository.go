package repository

import (
	"context"
	"time"

	authdomain "social-backend/internal/auth/domain"
)

// UserRepository defines the interface for user persistence.
// Find methods return (nil, nil) when no row matches.
type UserRepository interface {
	// Create assigns ID and timestamps; returns ErrEmailExists on a duplicate email
	Create(ctx context.Context, user *authdomain.User) error
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
	// FindByName returns every user with the given display name. Names are not unique.
	FindByName(ctx context.Context, name string) ([]*authdomain.User, error)
	List(ctx context.Context) ([]*authdomain.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// PushTokenRepository is the per-user device token registry.
type PushTokenRepository interface {
	// AddToken appends token to the user's set if absent, atomically
	AddToken(ctx context.Context, userID, token string) error
	// TokensFor returns the token set of each requested user that has any
	TokensFor(ctx context.Context, userIDs []string) (map[string][]string, error)
}

// SessionRepository stores server-side sessions keyed by session id.
type SessionRepository interface {
	Create(ctx context.Context, session *authdomain.Session) error
	FindByID(ctx context.Context, id string) (*authdomain.Session, error)
	// Delete returns ErrSessionNotFound when no session has the id
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
