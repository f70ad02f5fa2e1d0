package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/eventlyhq/evently-backend/internal/domain"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// FromDomain translates domain sentinel errors into their HTTP shape.
// Anything unrecognized becomes a generic 500 so internal detail never
// reaches the caller.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return &AppError{Code: "USER_EXISTS", Message: "email already registered", StatusCode: http.StatusConflict, Err: err}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return &AppError{Code: "INVALID_CREDENTIALS", Message: "invalid email or password", StatusCode: http.StatusUnauthorized, Err: err}
	case errors.Is(err, domain.ErrEventNotFound):
		return &AppError{Code: "NOT_FOUND", Message: "event not found", StatusCode: http.StatusNotFound, Err: err}
	case errors.Is(err, domain.ErrUserNotFound):
		return &AppError{Code: "NOT_FOUND", Message: "user not found", StatusCode: http.StatusNotFound, Err: err}
	case errors.Is(err, domain.ErrForbidden):
		return &AppError{Code: "FORBIDDEN", Message: "you do not own this event", StatusCode: http.StatusForbidden, Err: err}
	case errors.Is(err, domain.ErrTokenInvalid):
		return &AppError{Code: "TOKEN_INVALID", Message: "invalid or expired token", StatusCode: http.StatusUnauthorized, Err: err}
	default:
		return Internal(err)
	}
}

func StatusCode(err error) int {
	return FromDomain(err).StatusCode
}
