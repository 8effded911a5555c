package service

import "errors"

// Domain errors mapped to HTTP statuses at the handler boundary.
var (
	ErrEmailTaken         = errors.New("email already registered") // 409
	ErrInvalidCredentials = errors.New("invalid credentials")      // 401
	ErrNotFound           = errors.New("resource not found")       // 404
	ErrForbidden          = errors.New("forbidden")                // 403
)
