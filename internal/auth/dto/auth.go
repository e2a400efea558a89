package dto

import authdomain "social-backend/internal/auth/domain"

type RegisterRequest struct {
	Name      string `json:"name" binding:"required,personname"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,max=72"`
	PushToken string `json:"pushToken"`
}

type LoginRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	PushToken string `json:"pushToken"`
}

// LoginResponse keeps the existing client contract: a capitalised "Login"
// flag and the user only on success.
type LoginResponse struct {
	Login bool             `json:"Login"`
	User  *authdomain.User `json:"user,omitempty"`
}

type SessionResponse struct {
	Valid bool   `json:"valid"`
	Name  string `json:"name,omitempty"`
}

type UpdateTokenRequest struct {
	Name      string `json:"name" binding:"required"`
	PushToken string `json:"pushToken" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,max=72"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
