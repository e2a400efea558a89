package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	authdomain "social-backend/internal/auth/domain"
	authdto "social-backend/internal/auth/dto"
	"social-backend/internal/auth/repository"
	"social-backend/internal/auth/session"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo      repository.UserRepository
	tokenRepo     repository.PushTokenRepository
	sessions      *session.Store
	checkPassword func(password, hash string) bool
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokenRepo repository.PushTokenRepository, sessions *session.Store) AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		sessions:      sessions,
		checkPassword: repository.CheckPasswordHash,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*authdomain.User, error) {
	email := normalizeEmail(req.Email)

	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrEmailExists
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &authdomain.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashedPassword,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	u.registerToken(ctx, user, req.PushToken)
	return user, nil
}

func (u *authUsecase) Authenticate(ctx context.Context, email, password string) (*authdomain.AuthResult, error) {
	user, err := u.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		// same bcrypt work as a wrong password, so timing does not reveal the email
		u.checkPassword(password, repository.DummyHash())
		return &authdomain.AuthResult{OK: false}, nil
	}
	if !u.checkPassword(password, user.Password) {
		return &authdomain.AuthResult{OK: false}, nil
	}
	return &authdomain.AuthResult{OK: true, User: user}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*LoginResult, error) {
	result, err := u.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return &LoginResult{OK: false}, nil
	}

	u.registerToken(ctx, result.User, req.PushToken)

	cookie, sess, err := u.sessions.Create(ctx, result.User)
	if err != nil {
		return nil, err
	}

	log.Printf("[Auth] User %s logged in", result.User.ID)
	return &LoginResult{
		OK:      true,
		User:    result.User,
		Session: sess,
		Cookie:  cookie,
	}, nil
}

// registerToken is best effort: a failed token write never fails the login
// or registration that carried it.
func (u *authUsecase) registerToken(ctx context.Context, user *authdomain.User, token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	if err := u.tokenRepo.AddToken(ctx, user.ID, token); err != nil {
		log.Printf("[Auth] Failed to register push token for user %s: %v", user.ID, err)
	}
}

func (u *authUsecase) Logout(ctx context.Context, cookie string) error {
	return u.sessions.Destroy(ctx, cookie)
}

func (u *authUsecase) CurrentSession(ctx context.Context, cookie string) (*authdomain.Session, error) {
	return u.sessions.Resolve(ctx, cookie)
}

func (u *authUsecase) ListUsers(ctx context.Context) ([]authdomain.UserSummary, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]authdomain.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, authdomain.UserSummary{ID: user.ID, Name: user.Name})
	}
	return summaries, nil
}

// UpdatePushToken targets the oldest account with the given name, since
// display names are not unique.
func (u *authUsecase) UpdatePushToken(ctx context.Context, name, token string) error {
	users, err := u.userRepo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return authdomain.ErrUserNotFound
	}
	return u.tokenRepo.AddToken(ctx, users[0].ID, strings.TrimSpace(token))
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return authdomain.ErrUserNotFound
	}
	if !u.checkPassword(currentPassword, user.Password) {
		return authdomain.ErrInvalidPassword
	}

	hashedPassword, err := repository.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return u.userRepo.UpdatePassword(ctx, user.ID, hashedPassword)
}
