package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEventNotFound      = errors.New("event not found")
	ErrForbidden          = errors.New("forbidden")
	ErrTokenInvalid       = errors.New("token invalid")
)
