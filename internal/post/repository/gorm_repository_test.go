package repository

import (
	"context"
	"testing"
	"time"

	"social-backend/internal/post/domain"
	"social-backend/internal/testutil/dbmock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	postColumns    = []string{"id", "content", "username", "created_at", "updated_at"}
	commentColumns = []string{"id", "post_id", "content", "parent_id", "username", "created_at", "updated_at"}
)

func TestPostList_NewestFirst(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewGormPostRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "posts" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow("p2", "second", "Bob", now, now).
			AddRow("p1", "first", "Alice", now.Add(-time.Hour), now))

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[0].ID)
	assert.Equal(t, "Alice", posts[1].Username)
}

func TestPostUpdateContent(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewGormPostRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "posts" SET "content"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs("final", sqlmock.AnyArg(), "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow("p1", "final", "Alice", now, now))

	post, err := repo.UpdateContent(context.Background(), "p1", "final")
	require.NoError(t, err)
	assert.Equal(t, "final", post.Content)
}

func TestPostUpdateContent_NotFound(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewGormPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "posts"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := repo.UpdateContent(context.Background(), "missing", "x")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostDelete_NotFound(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewGormPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "posts" WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), domain.ErrPostNotFound)
}

func TestCommentListByPost_NewestFirst(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewGormCommentRepository(db)
	now := time.Now()
	parent := "c1"

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE post_id = \$1 ORDER BY created_at DESC`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow("c2", "p1", "reply", parent, "Alice", now, now).
			AddRow("c1", "p1", "top", nil, "Bob", now.Add(-time.Minute), now))

	comments, err := repo.ListByPost(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.NotNil(t, comments[0].ParentID)
	assert.Equal(t, "c1", *comments[0].ParentID)
	assert.Nil(t, comments[1].ParentID)
}

func TestCommentFindByID_NotFound(t *testing.T) {
	db, mock := dbmock.New(t)
	repo := NewGormCommentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(commentColumns))

	comment, err := repo.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, comment)
}
