package services

import "errors"

// Errors shared by the services. Handlers map them to HTTP statuses with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrUpstream     = errors.New("upstream failure")
)
