package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("length", "must be at least 3")

	if got := err.Error(); got != "length must be at least 3" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Errors: []FieldError{
		{Field: "length", Message: "must be an integer"},
		{Field: "max_attempts", Message: "must be positive"},
	}}

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_AsThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("parse request: %w", NewValidationError("length", "must be an integer"))

	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should find *ValidationError through wrapping")
	}
	if ve.Errors[0].Field != "length" {
		t.Errorf("field = %q, want %q", ve.Errors[0].Field, "length")
	}
	if !errors.Is(wrapped, ErrValidation) {
		t.Fatal("errors.Is(wrapped, ErrValidation) = false")
	}
}

func TestSentinels_Distinct(t *testing.T) {
	t.Parallel()

	if errors.Is(ErrNotFound, ErrAlreadyExists) || errors.Is(ErrNotFound, ErrValidation) {
		t.Fatal("sentinel errors must be distinct")
	}
}
