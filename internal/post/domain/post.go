package domain

import "time"

// Post is a top-level entry. Username is the author's display name at the
// time of writing; it is not a reference to a user row.
type Post struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Username  string    `json:"username" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Comment belongs to a post and optionally replies to another comment of
// the same post. A nil ParentID marks a top-level comment.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"postId" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	ParentID  *string   `json:"parentId" gorm:"index"`
	Username  string    `json:"username" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}
