package adapter

import "errors"

var (
	ErrUnavailable         = errors.New("server unavailable")
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrInternalServerError = errors.New("internal server error")
)
