package errors

import (
	"fmt"
	"net/http"
)

// Error code constants. Errors carry code + message; the frontend handles
// translation, backend logs are always in English.

// Self-regulation error codes.
const (
	CodeChildNotFound        = "CHILD_NOT_FOUND"
	CodeEventNotFound        = "EVENT_NOT_FOUND"
	CodeEventAlreadyResolved = "EVENT_ALREADY_RESOLVED"
	CodeActivationFailed     = "ACTIVATION_FAILED"
)

// Emergency contact error codes.
const (
	CodeContactNotFound = "CONTACT_NOT_FOUND"
)

// Notification error codes.
const (
	CodeTokenNotFound    = "DEVICE_TOKEN_NOT_FOUND"
	CodeTaskNotFound     = "TASK_NOT_FOUND"
	CodePushUnavailable  = "PUSH_PROVIDER_UNAVAILABLE"
	CodeEmailUnavailable = "EMAIL_PROVIDER_UNAVAILABLE"
)

// Auth error codes.
const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
)

// Validation error codes.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrChildNotFoundf creates a child not found error.
func ErrChildNotFoundf(childID string) *AppError {
	return &AppError{
		Code:       CodeChildNotFound,
		Message:    fmt.Sprintf("child %s not found", childID),
		HTTPStatus: http.StatusNotFound,
	}
}

// ErrEventNotFoundf creates a self-regulation event not found error.
func ErrEventNotFoundf(eventID string) *AppError {
	return &AppError{
		Code:       CodeEventNotFound,
		Message:    fmt.Sprintf("self-regulation event %s not found", eventID),
		HTTPStatus: http.StatusNotFound,
	}
}

// ErrEventAlreadyResolvedf creates a 409 for a second resolution attempt.
func ErrEventAlreadyResolvedf(eventID string) *AppError {
	return &AppError{
		Code:       CodeEventAlreadyResolved,
		Message:    fmt.Sprintf("self-regulation event %s is already resolved", eventID),
		HTTPStatus: http.StatusConflict,
	}
}

// ErrContactNotFoundf creates an emergency contact not found error.
func ErrContactNotFoundf(contactID string) *AppError {
	return &AppError{
		Code:       CodeContactNotFound,
		Message:    fmt.Sprintf("emergency contact %s not found", contactID),
		HTTPStatus: http.StatusNotFound,
	}
}
