package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrBlogNotFound   = errors.New("no blog found with provided id")
)
