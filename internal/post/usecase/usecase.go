package usecase

import (
	"context"

	"social-backend/internal/post/domain"
)

// PostUsecase defines the interface for post and comment business logic
type PostUsecase interface {
	// CreatePost stores the post, then publishes a post_created event
	CreatePost(ctx context.Context, content, username string) (*domain.Post, error)

	// ListPosts returns every post, newest first
	ListPosts(ctx context.Context) ([]*domain.Post, error)

	UpdatePost(ctx context.Context, id, content string) (*domain.Post, error)

	// DeletePost removes the post only; its comments are kept
	DeletePost(ctx context.Context, id string) error

	// CreateComment requires an existing post and, when parentID is set, an
	// existing comment of the same post
	CreateComment(ctx context.Context, postID, content string, parentID *string, username string) (*domain.Comment, error)

	// ListComments returns the comments of a post, newest first
	ListComments(ctx context.Context, postID string) ([]*domain.Comment, error)
}
