package repository

import (
	"context"
	"testing"
	"time"

	authdomain "social-backend/internal/auth/domain"
	"social-backend/internal/testutil/dbmock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "email", "password", "created_at", "updated_at"}

func TestUserCreate_Success(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" \("id","name","email","password","created_at","updated_at"\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\)`).
		WithArgs(sqlmock.AnyArg(), "Alice", "alice@example.com", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user := &authdomain.User{Name: "Alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &authdomain.User{Name: "Alice", Email: "alice@example.com", Password: "hash"})
	assert.ErrorIs(t, err, authdomain.ErrEmailExists)
}

func TestUserFindByEmail(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("alice@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "Alice", "alice@example.com", "hash", now, now))

	user, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "hash", user.Password)
}

func TestUserFindByEmail_NotFound(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserFindByName_OldestFirst(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE name = \$1 ORDER BY created_at ASC`).
		WithArgs("Alice").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u1", "Alice", "a@example.com", "h", now.Add(-time.Hour), now).
			AddRow("u2", "Alice", "b@example.com", "h", now, now))

	users, err := repo.FindByName(context.Background(), "Alice")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
}

func TestUserUpdatePassword_NotFound(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "password"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs("newhash", sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdatePassword(context.Background(), "missing", "newhash")
	assert.ErrorIs(t, err, authdomain.ErrUserNotFound)
}
