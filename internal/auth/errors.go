package auth

import "errors"

// Store errors.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidQuery     = errors.New("empty query criteria")
	ErrUnknownAttribute = errors.New("unknown user attribute")
)

// Service errors.
var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidToken   = errors.New("invalid reset token")
)

// Hasher errors.
var ErrInvalidInput = errors.New("invalid password input")
