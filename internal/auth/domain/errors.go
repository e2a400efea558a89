package domain

import "social-backend/pkg/apperror"

var (
	ErrEmailExists      = apperror.New(apperror.KindConflict, "email already registered")
	ErrUserNotFound     = apperror.New(apperror.KindNotFound, "user not found")
	ErrSessionNotFound  = apperror.New(apperror.KindNotFound, "session not found")
	ErrNotAuthenticated = apperror.New(apperror.KindUnauthorized, "not authenticated")
	ErrInvalidPassword  = apperror.New(apperror.KindValidation, "current password is incorrect")
)
