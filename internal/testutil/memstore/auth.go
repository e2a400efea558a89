package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	authdomain "social-backend/internal/auth/domain"
	authrepo "social-backend/internal/auth/repository"

	"github.com/google/uuid"
)

type UserRepository struct {
	mu    sync.RWMutex
	users []*authdomain.User
}

var _ authrepo.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(_ context.Context, user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return authdomain.ErrEmailExists
		}
	}
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users = append(r.users, &stored)
	return nil
}

func (r *UserRepository) find(match func(*authdomain.User) bool) *authdomain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if match(u) {
			found := *u
			return &found
		}
	}
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*authdomain.User, error) {
	return r.find(func(u *authdomain.User) bool { return u.Email == email }), nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*authdomain.User, error) {
	return r.find(func(u *authdomain.User) bool { return u.ID == id }), nil
}

func (r *UserRepository) FindByName(_ context.Context, name string) ([]*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*authdomain.User
	for _, u := range r.users {
		if u.Name == name {
			found := *u
			out = append(out, &found)
		}
	}
	return out, nil
}

func (r *UserRepository) List(_ context.Context) ([]*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*authdomain.User, 0, len(r.users))
	for _, u := range r.users {
		found := *u
		out = append(out, &found)
	}
	return out, nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == userID {
			u.Password = passwordHash
			u.UpdatedAt = time.Now()
			return nil
		}
	}
	return authdomain.ErrUserNotFound
}

type PushTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string][]string
}

var _ authrepo.PushTokenRepository = (*PushTokenRepository)(nil)

func NewPushTokenRepository() *PushTokenRepository {
	return &PushTokenRepository{tokens: make(map[string][]string)}
}

func (r *PushTokenRepository) AddToken(_ context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.tokens[userID] {
		if existing == token {
			return nil
		}
	}
	r.tokens[userID] = append(r.tokens[userID], token)
	return nil
}

func (r *PushTokenRepository) TokensFor(_ context.Context, userIDs []string) (map[string][]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string][]string)
	for _, id := range userIDs {
		if tokens := r.tokens[id]; len(tokens) > 0 {
			out[id] = append([]string(nil), tokens...)
		}
	}
	return out, nil
}

type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]authdomain.Session
}

var _ authrepo.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]authdomain.Session)}
}

func (r *SessionRepository) Create(_ context.Context, session *authdomain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *SessionRepository) FindByID(_ context.Context, id string) (*authdomain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return authdomain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *SessionRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of stored sessions.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// newestFirst orders indexes by timestamp descending, later inserts first on ties.
func newestFirst(times []time.Time) []int {
	idx := make([]int, len(times))
	for i := range idx {
		idx[i] = len(times) - 1 - i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return times[idx[a]].After(times[idx[b]])
	})
	return idx
}
