package errors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrMissingSubject     = errors.New("token has no subject")
	ErrProfileNotFound    = errors.New("user not found")
	ErrAdminRequired      = errors.New("admin access required")
)
