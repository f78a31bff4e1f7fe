package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError is the error type every layer below the HTTP boundary returns.
// Code is stable and machine readable, Details is for humans.
type ServiceError struct {
	Domain  string `json:"-"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Status  int    `json:"-"`
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Code, e.Details)
}

// FullCode returns the wire representation, e.g. "global.not_found".
func (e *ServiceError) FullCode() string {
	return e.Domain + "." + e.Code
}

var (
	ErrNotFound = &ServiceError{
		Domain:  "global",
		Code:    "not_found",
		Details: "Requested resource is not found",
		Status:  http.StatusNotFound,
	}

	ErrAlreadyExists = &ServiceError{
		Domain:  "global",
		Code:    "already_exists",
		Details: "Target resource already exists",
		Status:  http.StatusConflict,
	}

	ErrUnhandled = &ServiceError{
		Domain:  "global",
		Code:    "unhandled_exception",
		Details: "Unexpected Internal Server Error",
		Status:  http.StatusInternalServerError,
	}
)

// ValidationError builds a 422 for a payload that fails the per-type shape rules.
func ValidationError(format string, args ...any) *ServiceError {
	return &ServiceError{
		Domain:  "global",
		Code:    "validation_error",
		Details: fmt.Sprintf(format, args...),
		Status:  http.StatusUnprocessableEntity,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
