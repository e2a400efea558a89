package usecase

import (
	"context"
	"testing"
	"time"

	authdomain "social-backend/internal/auth/domain"
	authdto "social-backend/internal/auth/dto"
	"social-backend/internal/auth/repository"
	"social-backend/internal/auth/session"
	"social-backend/internal/testutil/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	users    *memstore.UserRepository
	tokens   *memstore.PushTokenRepository
	sessions *memstore.SessionRepository
	uc       AuthUsecase
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:    memstore.NewUserRepository(),
		tokens:   memstore.NewPushTokenRepository(),
		sessions: memstore.NewSessionRepository(),
	}
	f.uc = NewAuthUsecase(f.users, f.tokens, session.NewStore(f.sessions, "test-secret", time.Hour))
	return f
}

func (f *authFixture) tokensOf(t *testing.T, userID string) []string {
	t.Helper()
	byUser, err := f.tokens.TokensFor(context.Background(), []string{userID})
	require.NoError(t, err)
	return byUser[userID]
}

func register(t *testing.T, uc AuthUsecase, name, email, password, pushToken string) *authdomain.User {
	t.Helper()
	user, err := uc.Register(context.Background(), &authdto.RegisterRequest{
		Name:      name,
		Email:     email,
		Password:  password,
		PushToken: pushToken,
	})
	require.NoError(t, err)
	return user
}

func TestRegisterHashesPassword(t *testing.T) {
	f := newAuthFixture()

	user := register(t, f.uc, "Alice", " Alice@Example.com ", "secret123", "")

	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)
	stored, err := f.users.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	register(t, f.uc, "Alice", "alice@example.com", "secret123", "")

	_, err := f.uc.Register(context.Background(), &authdto.RegisterRequest{
		Name:     "Other Alice",
		Email:    "ALICE@example.com",
		Password: "different",
	})
	assert.ErrorIs(t, err, authdomain.ErrEmailExists)
}

func TestRegisterStoresPushToken(t *testing.T) {
	f := newAuthFixture()

	user := register(t, f.uc, "Alice", "alice@example.com", "secret123", "tok-1")

	assert.Equal(t, []string{"tok-1"}, f.tokensOf(t, user.ID))
}

func TestAuthenticate(t *testing.T) {
	f := newAuthFixture()
	register(t, f.uc, "Alice", "alice@example.com", "secret123", "")
	ctx := context.Background()

	result, err := f.uc.Authenticate(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, "Alice", result.User.Name)

	result, err = f.uc.Authenticate(ctx, "alice@example.com", "wrong")
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Nil(t, result.User)

	result, err = f.uc.Authenticate(ctx, "nobody@example.com", "secret123")
	require.NoError(t, err)
	assert.False(t, result.OK)
}

func TestLoginOpensSessionAndAddsTokenOnce(t *testing.T) {
	f := newAuthFixture()
	user := register(t, f.uc, "Alice", "alice@example.com", "secret123", "tok-1")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		result, err := f.uc.Login(ctx, &authdto.LoginRequest{Email: "alice@example.com", Password: "secret123", PushToken: "tok-1"})
		require.NoError(t, err)
		require.True(t, result.OK)
		assert.NotEmpty(t, result.Cookie)
	}

	assert.Equal(t, []string{"tok-1"}, f.tokensOf(t, user.ID))
	assert.Equal(t, 2, f.sessions.Len())
}

func TestLoginWrongPasswordCreatesNoSession(t *testing.T) {
	f := newAuthFixture()
	register(t, f.uc, "Alice", "alice@example.com", "secret123", "")

	result, err := f.uc.Login(context.Background(), &authdto.LoginRequest{Email: "alice@example.com", Password: "nope"})
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Empty(t, result.Cookie)
	assert.Equal(t, 0, f.sessions.Len())
}

func TestSessionLifecycle(t *testing.T) {
	f := newAuthFixture()
	register(t, f.uc, "Alice", "alice@example.com", "secret123", "")
	ctx := context.Background()

	result, err := f.uc.Login(ctx, &authdto.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	sess, err := f.uc.CurrentSession(ctx, result.Cookie)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "Alice", sess.Name)

	require.NoError(t, f.uc.Logout(ctx, result.Cookie))

	sess, err = f.uc.CurrentSession(ctx, result.Cookie)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestListUsers(t *testing.T) {
	f := newAuthFixture()
	alice := register(t, f.uc, "Alice", "alice@example.com", "secret123", "")
	bob := register(t, f.uc, "Bob", "bob@example.com", "secret123", "")

	users, err := f.uc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []authdomain.UserSummary{
		{ID: alice.ID, Name: "Alice"},
		{ID: bob.ID, Name: "Bob"},
	}, users)
}

func TestUpdatePushToken(t *testing.T) {
	f := newAuthFixture()
	first := register(t, f.uc, "Alice", "alice@example.com", "secret123", "")
	second := register(t, f.uc, "Alice", "alice2@example.com", "secret123", "")
	ctx := context.Background()

	require.NoError(t, f.uc.UpdatePushToken(ctx, "Alice", "tok-9"))
	require.NoError(t, f.uc.UpdatePushToken(ctx, "Alice", "tok-9"))

	assert.Equal(t, []string{"tok-9"}, f.tokensOf(t, first.ID))
	assert.Empty(t, f.tokensOf(t, second.ID))

	assert.ErrorIs(t, f.uc.UpdatePushToken(ctx, "Nobody", "tok-9"), authdomain.ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture()
	user := register(t, f.uc, "Alice", "alice@example.com", "secret123", "")
	ctx := context.Background()

	assert.ErrorIs(t, f.uc.ChangePassword(ctx, user.ID, "wrong", "newsecret"), authdomain.ErrInvalidPassword)
	assert.ErrorIs(t, f.uc.ChangePassword(ctx, "missing", "secret123", "newsecret"), authdomain.ErrUserNotFound)

	require.NoError(t, f.uc.ChangePassword(ctx, user.ID, "secret123", "newsecret"))

	result, err := f.uc.Authenticate(ctx, "alice@example.com", "newsecret")
	require.NoError(t, err)
	assert.True(t, result.OK)

	result, err = f.uc.Authenticate(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.False(t, result.OK)
}

func TestAuthenticateUnknownEmailStillComparesHash(t *testing.T) {
	f := newAuthFixture()
	register(t, f.uc, "Alice", "alice@example.com", "secret123", "")

	var compared []string
	uc := f.uc.(*authUsecase)
	uc.checkPassword = func(password, hash string) bool {
		compared = append(compared, hash)
		return repository.CheckPasswordHash(password, hash)
	}
	ctx := context.Background()

	result, err := uc.Authenticate(ctx, "alice@example.com", "wrong")
	require.NoError(t, err)
	assert.False(t, result.OK)

	result, err = uc.Authenticate(ctx, "nobody@example.com", "wrong")
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Nil(t, result.User)

	require.Len(t, compared, 2)
	assert.Equal(t, repository.DummyHash(), compared[1])

	cost, err := bcrypt.Cost([]byte(compared[1]))
	require.NoError(t, err)
	assert.Equal(t, repository.PasswordCost, cost)
}

func TestAuthenticateUnknownEmailTiming(t *testing.T) {
	f := newAuthFixture()
	register(t, f.uc, "Alice", "alice@example.com", "secret123", "")
	ctx := context.Background()
	repository.DummyHash()

	start := time.Now()
	_, err := f.uc.Authenticate(ctx, "alice@example.com", "wrong")
	require.NoError(t, err)
	known := time.Since(start)

	start = time.Now()
	_, err = f.uc.Authenticate(ctx, "nobody@example.com", "wrong")
	require.NoError(t, err)
	unknown := time.Since(start)

	assert.Greater(t, unknown, known/10)
}
