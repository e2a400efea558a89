package domain

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"index;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, never returned in JSON
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserSummary is the public projection used by the user directory.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthResult is the outcome of checking a password. User is set only when OK.
type AuthResult struct {
	OK   bool
	User *User
}
