package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrInvalidCode         = errors.New("invalid or expired code")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrEmptyContent         = errors.New("note content must not be empty")
	ErrAttachmentTooLarge   = errors.New("attachment exceeds size limit")
	ErrForeignAttachmentKey = errors.New("attachment key belongs to another user")
)
