package notification

import (
	"context"
	"time"
)

const (
	EventPostCreated    = "post_created"
	EventCommentCreated = "comment_created"
	EventMessageSent    = "message_sent"
)

// Event describes a content write that may warrant push notifications.
// Actor and Recipient are display names; ResourceID is what a tap opens.
type Event struct {
	Type       string    `json:"type"`
	Actor      string    `json:"actor"`
	Recipient  string    `json:"recipient,omitempty"`
	ResourceID string    `json:"resourceId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Publisher is what write flows call once their write is committed.
// Publish must not wait for delivery.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
