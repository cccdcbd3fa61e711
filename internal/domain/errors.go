package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for content loading failures.
var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrInvalidProject = errors.New("invalid project record")
)
