package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"learnapp/pkg/logger"
)

// Error kinds. Use errors.Is against these.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("already exists")
	ErrPermission   = errors.New("permission denied")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("not authorized")
)

// Error is a domain error whose message is safe to show to the client.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

func newError(kind error, format string, args ...interface{}) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) error {
	return newError(ErrValidation, format, args...)
}

func Conflict(format string, args ...interface{}) error {
	return newError(ErrConflict, format, args...)
}

func Permission(format string, args ...interface{}) error {
	return newError(ErrPermission, format, args...)
}

func NotFound(format string, args ...interface{}) error {
	return newError(ErrNotFound, format, args...)
}

func Unauthorized(format string, args ...interface{}) error {
	return newError(ErrUnauthorized, format, args...)
}

// StatusCode maps an error to the HTTP status it is reported with.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// WriteErr reports err to the client. Errors that are not domain errors are
// logged and replaced with a generic message.
func WriteErr(ctx context.Context, w http.ResponseWriter, err error) {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		logger.Log(ctx).Errorf("internal error: %v", err)
		WriteMsg(w, "something went wrong", http.StatusInternalServerError)
		return
	}
	logger.Log(ctx).Infof("request rejected: %v", err)
	WriteMsg(w, domainErr.msg, StatusCode(domainErr))
}
