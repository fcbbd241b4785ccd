package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppErrorWrapping(t *testing.T) {
	t.Parallel()

	underlying := errors.New("connection refused")
	appErr := Wrap(underlying, CodeActivationFailed, "could not persist event", http.StatusInternalServerError)

	if !errors.Is(appErr, underlying) {
		t.Fatal("errors.Is did not match wrapped error")
	}

	var got *AppError
	wrapped := fmt.Errorf("handler: %w", appErr)
	if !errors.As(wrapped, &got) {
		t.Fatal("errors.As did not find AppError through wrapping")
	}
	if got.Code != CodeActivationFailed {
		t.Fatalf("Code = %q, want %q", got.Code, CodeActivationFailed)
	}
}

func TestConstructorStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFound(CodeEventNotFound, "x"), http.StatusNotFound},
		{"bad request", BadRequest(CodeValidationFailed, "x"), http.StatusBadRequest},
		{"conflict", Conflict(CodeEventAlreadyResolved, "x"), http.StatusConflict},
		{"internal", Internal(CodeActivationFailed, "x"), http.StatusInternalServerError},
		{"already resolved helper", ErrEventAlreadyResolvedf("id"), http.StatusConflict},
		{"child helper", ErrChildNotFoundf("id"), http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.err.HTTPStatus != tc.want {
				t.Fatalf("HTTPStatus = %d, want %d", tc.err.HTTPStatus, tc.want)
			}
		})
	}
}

func TestConstructorMessagesNameTheResource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *AppError
		id   string
	}{
		{"child", ErrChildNotFoundf("child-9"), "child-9"},
		{"event", ErrEventNotFoundf("ev-42"), "ev-42"},
		{"already resolved", ErrEventAlreadyResolvedf("ev-42"), "ev-42"},
		{"contact", ErrContactNotFoundf("ec-7"), "ec-7"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if !strings.Contains(tc.err.Message, tc.id) {
				t.Fatalf("Message = %q, does not name %q", tc.err.Message, tc.id)
			}
		})
	}
}

func TestIsAppError(t *testing.T) {
	t.Parallel()

	if _, ok := IsAppError(errors.New("plain")); ok {
		t.Fatal("plain error reported as AppError")
	}
	appErr, ok := IsAppError(fmt.Errorf("outer: %w", ErrContactNotFoundf("c1")))
	if !ok {
		t.Fatal("wrapped AppError not detected")
	}
	if appErr.Code != CodeContactNotFound {
		t.Fatalf("Code = %q, want %q", appErr.Code, CodeContactNotFound)
	}
}
