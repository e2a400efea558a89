package repository

import (
	"context"
	"testing"
	"time"

	authdomain "social-backend/internal/auth/domain"
	"social-backend/internal/testutil/dbmock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionDelete_Missing(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewSessionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sessions" WHERE id = \$1`).
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, repo.Delete(context.Background(), "gone"), authdomain.ErrSessionNotFound)
}

func TestSessionDeleteExpired(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewSessionRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sessions" WHERE expires_at <= \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	removed, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestSessionFindByID_NotFound(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "expires_at", "created_at"}))

	sess, err := repo.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, sess)
}
