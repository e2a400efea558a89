package usecase

import (
	"context"

	authdomain "social-backend/internal/auth/domain"
	authdto "social-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for account, credential and session logic
type AuthUsecase interface {
	// Register creates a user with a hashed password; ErrEmailExists on duplicates
	Register(ctx context.Context, req *authdto.RegisterRequest) (*authdomain.User, error)

	// Authenticate checks a password without revealing whether the email exists
	Authenticate(ctx context.Context, email, password string) (*authdomain.AuthResult, error)

	// Login authenticates, registers the optional push token and opens a session
	Login(ctx context.Context, req *authdto.LoginRequest) (*LoginResult, error)

	// Logout destroys the session behind the cookie value
	Logout(ctx context.Context, cookie string) error

	// CurrentSession resolves a cookie value to a live session, nil when none
	CurrentSession(ctx context.Context, cookie string) (*authdomain.Session, error)

	ListUsers(ctx context.Context) ([]authdomain.UserSummary, error)

	// UpdatePushToken adds a token to the set of the user with the given name
	UpdatePushToken(ctx context.Context, name, token string) error

	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// LoginResult carries the cookie value of the new session when OK.
type LoginResult struct {
	OK      bool
	User    *authdomain.User
	Session *authdomain.Session
	Cookie  string
}
