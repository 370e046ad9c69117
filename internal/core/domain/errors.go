package domain

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidThoughtID  = errors.New("invalid id")
	ErrInvalidQuery      = errors.New("invalid query")
	ErrMissingCredential = errors.New("authentication missing")
	ErrInvalidCredential = errors.New("authentication invalid")
	ErrInvalidLogin      = errors.New("invalid email or password")
	ErrForbidden         = errors.New("not the owner of this thought")
	ErrThoughtNotFound   = errors.New("thought not found")
	ErrEmailTaken        = errors.New("email already in use")
	ErrInternal          = errors.New("internal server error")
)
