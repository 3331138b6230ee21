package omar_errors

import "errors"

// Request handling categories. Handlers wrap these with %w and the error
// middleware maps them to status codes with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrInternal      = errors.New("internal error")
	ErrTooLarge      = errors.New("payload too large")
	ErrRateLimited   = errors.New("rate limited")
	ErrAlreadyExists = errors.New("already exists")
)
