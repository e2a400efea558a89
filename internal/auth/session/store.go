// Package session implements server-side sessions. The session row lives in
// the database so any instance can resolve it; the client only holds a
// signed cookie naming the session id.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdomain "social-backend/internal/auth/domain"
	"social-backend/internal/auth/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Store struct {
	repo   repository.SessionRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewStore(repo repository.SessionRepository, secret string, ttl time.Duration) *Store {
	return &Store{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create starts a session for user and returns the cookie value for it.
func (s *Store) Create(ctx context.Context, user *authdomain.User) (string, *authdomain.Session, error) {
	now := s.now()
	sess := &authdomain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Name:      user.Name,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	cookie, err := s.sign(sess)
	if err != nil {
		return "", nil, err
	}
	return cookie, sess, nil
}

// Resolve returns the live session behind cookie, or nil when the cookie is
// empty, forged, expired, or names a session that no longer exists.
func (s *Store) Resolve(ctx context.Context, cookie string) (*authdomain.Session, error) {
	if cookie == "" {
		return nil, nil
	}
	sid, err := s.parse(cookie)
	if err != nil {
		return nil, nil
	}

	sess, err := s.repo.FindByID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	if sess.Expired(s.now()) {
		if err := s.repo.Delete(ctx, sess.ID); err != nil && !errors.Is(err, authdomain.ErrSessionNotFound) {
			return nil, err
		}
		return nil, nil
	}
	return sess, nil
}

// Destroy removes the session behind cookie. ErrSessionNotFound when there
// is nothing to remove.
func (s *Store) Destroy(ctx context.Context, cookie string) error {
	sid, err := s.parse(cookie)
	if err != nil {
		return authdomain.ErrSessionNotFound
	}
	return s.repo.Delete(ctx, sid)
}

func (s *Store) sign(sess *authdomain.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        sess.ID,
		IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}
	return signed, nil
}

func (s *Store) parse(cookie string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(cookie, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return "", errors.New("invalid session cookie")
	}
	if claims.ID == "" {
		return "", errors.New("session cookie without id")
	}
	return claims.ID, nil
}
