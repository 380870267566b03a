package service

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound covers a missing transaction or rule.
	ErrNotFound = errors.New("not found")

	// ErrCategoryNotFound is an unexpected-state error: a referenced
	// category that must exist does not.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrForbidden means the caller does not own the entity.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation marks user-input errors; callers wrap it with detail.
	ErrValidation = errors.New("validation failed")
)
