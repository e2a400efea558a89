package memstore

import (
	"context"
	"sync"
	"time"

	messagedomain "social-backend/internal/message/domain"
	messagerepo "social-backend/internal/message/repository"
	postdomain "social-backend/internal/post/domain"
	postrepo "social-backend/internal/post/repository"

	"github.com/google/uuid"
)

type PostRepository struct {
	mu    sync.RWMutex
	posts []*postdomain.Post
}

var _ postrepo.PostRepository = (*PostRepository)(nil)

func NewPostRepository() *PostRepository {
	return &PostRepository{}
}

func (r *PostRepository) Create(_ context.Context, post *postdomain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	stored := *post
	r.posts = append(r.posts, &stored)
	return nil
}

func (r *PostRepository) FindByID(_ context.Context, id string) (*postdomain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.ID == id {
			found := *p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *PostRepository) List(_ context.Context) ([]*postdomain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	times := make([]time.Time, len(r.posts))
	for i, p := range r.posts {
		times[i] = p.CreatedAt
	}
	out := make([]*postdomain.Post, 0, len(r.posts))
	for _, i := range newestFirst(times) {
		found := *r.posts[i]
		out = append(out, &found)
	}
	return out, nil
}

func (r *PostRepository) UpdateContent(_ context.Context, id, content string) (*postdomain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.ID == id {
			p.Content = content
			p.UpdatedAt = time.Now()
			found := *p
			return &found, nil
		}
	}
	return nil, postdomain.ErrPostNotFound
}

func (r *PostRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return postdomain.ErrPostNotFound
}

type CommentRepository struct {
	mu       sync.RWMutex
	comments []*postdomain.Comment
}

var _ postrepo.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func (r *CommentRepository) Create(_ context.Context, comment *postdomain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	stored := *comment
	r.comments = append(r.comments, &stored)
	return nil
}

func (r *CommentRepository) FindByID(_ context.Context, id string) (*postdomain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.comments {
		if c.ID == id {
			found := *c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *CommentRepository) ListByPost(_ context.Context, postID string) ([]*postdomain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matching []*postdomain.Comment
	var times []time.Time
	for _, c := range r.comments {
		if c.PostID == postID {
			matching = append(matching, c)
			times = append(times, c.CreatedAt)
		}
	}
	out := make([]*postdomain.Comment, 0, len(matching))
	for _, i := range newestFirst(times) {
		found := *matching[i]
		out = append(out, &found)
	}
	return out, nil
}

type MessageRepository struct {
	mu       sync.RWMutex
	messages []*messagedomain.Message
}

var _ messagerepo.MessageRepository = (*MessageRepository)(nil)

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Create(_ context.Context, message *messagedomain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()
	stored := *message
	r.messages = append(r.messages, &stored)
	return nil
}

// Conversation keeps insertion order, which is creation order.
func (r *MessageRepository) Conversation(_ context.Context, a, b string) ([]*messagedomain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*messagedomain.Message
	for _, m := range r.messages {
		if (m.Sender == a && m.Receiver == b) || (m.Sender == b && m.Receiver == a) {
			found := *m
			out = append(out, &found)
		}
	}
	return out, nil
}
