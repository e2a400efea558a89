package domain

import "social-backend/pkg/apperror"

var (
	ErrPostNotFound          = apperror.New(apperror.KindNotFound, "post not found")
	ErrParentCommentNotFound = apperror.New(apperror.KindValidation, "parent comment not found on this post")
	ErrEmptyContent          = apperror.New(apperror.KindValidation, "content must not be empty")
	ErrEmptyUsername         = apperror.New(apperror.KindValidation, "username must not be empty")
)
