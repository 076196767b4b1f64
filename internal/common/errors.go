// Package common defines shared sentinel errors used across client and
// server layers of the portal. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrAlreadyLoggedIn    = errors.New("already authenticated")

	// Request validation errors (recoverable, session keeps its state).
	ErrValidation = errors.New("validation error")

	// Protocol errors (malformed frame or message).
	ErrProtocol = errors.New("protocol error")

	// Dispatcher errors.
	ErrServerBusy = errors.New("server busy")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
