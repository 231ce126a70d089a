package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a business-rule failure that carries the HTTP status it should be
// rendered with. Store and other infrastructure failures are plain errors and
// render as 500.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// NewError returns an Error with the given status and message.
func NewError(status int, msg string) *Error {
	return &Error{Message: msg, Status: status}
}

// NotFoundf returns a 404 Error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return NewError(http.StatusNotFound, fmt.Sprintf(format, args...))
}

// BadRequestf returns a 400 Error with a formatted message.
func BadRequestf(format string, args ...any) *Error {
	return NewError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

// StatusOf reports the HTTP status for err: the status of the first *Error in
// its chain, or 500 when there is none (or the status is unset).
func StatusOf(err error) int {
	var de *Error
	if errors.As(err, &de) && de.Status != 0 {
		return de.Status
	}
	return http.StatusInternalServerError
}
