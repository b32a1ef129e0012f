package domain

import "errors"

// Validation.
var ErrValidation = errors.New("validation failed")

// Authentication.
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Authorization.
var (
	ErrForbidden       = errors.New("access forbidden")
	ErrAccountInactive = errors.New("account is not active")
)

// Not found.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrArticleNotFound = errors.New("article not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrFAQNotFound     = errors.New("faq not found")
)

// Conflicts.
var (
	ErrUserExists        = errors.New("user already exists")
	ErrAlreadyAnswered   = errors.New("message already answered")
	ErrInvalidTransition = errors.New("invalid status transition")
)
