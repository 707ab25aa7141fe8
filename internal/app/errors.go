package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrMissingCredentials = errors.New("LinkedIn credentials not configured")
	ErrLoginFailed        = errors.New("login failed")
	ErrNoRecords          = errors.New("no job details found")
)
