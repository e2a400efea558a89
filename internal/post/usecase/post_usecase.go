package usecase

import (
	"context"
	"log"
	"strings"

	"social-backend/internal/notification"
	"social-backend/internal/post/domain"
	"social-backend/internal/post/repository"
)

// postUsecase implements PostUsecase interface
type postUsecase struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	publisher   notification.Publisher
}

// NewPostUsecase creates a new instance of postUsecase
func NewPostUsecase(postRepo repository.PostRepository, commentRepo repository.CommentRepository, publisher notification.Publisher) PostUsecase {
	return &postUsecase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		publisher:   publisher,
	}
}

func (u *postUsecase) CreatePost(ctx context.Context, content, username string) (*domain.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrEmptyUsername
	}

	post := &domain.Post{
		Content:  content,
		Username: username,
	}
	if err := u.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	u.publish(ctx, notification.Event{
		Type:       notification.EventPostCreated,
		Actor:      post.Username,
		ResourceID: post.ID,
		Content:    post.Content,
		CreatedAt:  post.CreatedAt,
	})
	return post, nil
}

func (u *postUsecase) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	return u.postRepo.List(ctx)
}

func (u *postUsecase) UpdatePost(ctx context.Context, id, content string) (*domain.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}
	return u.postRepo.UpdateContent(ctx, id, content)
}

func (u *postUsecase) DeletePost(ctx context.Context, id string) error {
	return u.postRepo.Delete(ctx, id)
}

func (u *postUsecase) CreateComment(ctx context.Context, postID, content string, parentID *string, username string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrEmptyUsername
	}

	post, err := u.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}

	if parentID != nil && *parentID == "" {
		parentID = nil
	}
	if parentID != nil {
		parent, err := u.commentRepo.FindByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.PostID != post.ID {
			return nil, domain.ErrParentCommentNotFound
		}
	}

	comment := &domain.Comment{
		PostID:   post.ID,
		Content:  content,
		ParentID: parentID,
		Username: username,
	}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	u.publish(ctx, notification.Event{
		Type:       notification.EventCommentCreated,
		Actor:      comment.Username,
		Recipient:  post.Username,
		ResourceID: post.ID,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt,
	})
	return comment, nil
}

func (u *postUsecase) ListComments(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return u.commentRepo.ListByPost(ctx, postID)
}

// publish runs after the write is stored; its failure never fails the write.
func (u *postUsecase) publish(ctx context.Context, event notification.Event) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, event); err != nil {
		log.Printf("[PostUsecase] Failed to publish %s for %s: %v", event.Type, event.ResourceID, err)
	}
}
