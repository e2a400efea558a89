package repository

import (
	"context"

	"social-backend/internal/post/domain"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create assigns ID and timestamps
	Create(ctx context.Context, post *domain.Post) error

	// FindByID returns (nil, nil) when the post does not exist
	FindByID(ctx context.Context, id string) (*domain.Post, error)

	// List returns all posts, newest first
	List(ctx context.Context) ([]*domain.Post, error)

	// UpdateContent returns ErrPostNotFound when the post does not exist
	UpdateContent(ctx context.Context, id, content string) (*domain.Post, error)

	// Delete returns ErrPostNotFound when the post does not exist
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id string) (*domain.Comment, error)

	// ListByPost returns the comments of a post, newest first
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
}
