package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("post_type", "book")
	if got, want := err.Error(), `post_type "book" not found`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	wrapped := fmt.Errorf("load: %w", err)
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound(wrapped) = false, want true")
	}
	if IsInvalidInput(wrapped) {
		t.Error("IsInvalidInput(not found) = true, want false")
	}
	var nf *NotFoundError
	if !errors.As(wrapped, &nf) || nf.Name != "book" {
		t.Errorf("errors.As = %v, want Name book", nf)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("name", "required")
	if got, want := err.Error(), `validation failed for field "name": required`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !IsInvalidInput(err) {
		t.Error("IsInvalidInput = false, want true")
	}
	if got, want := NewValidationError("", "bad").Error(), "validation failed: bad"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
