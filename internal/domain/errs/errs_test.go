package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFound_MatchesSentinel(t *testing.T) {
	err := NotFound("loan type")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "loan type not found" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestConflict_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("create client: %w", Conflict("email %s already used", "a@b.c"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("provision: %w", Invalid("client_id", "does not exist in workspace"))
	if !IsValidation(err) {
		t.Fatal("expected validation error")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "client_id" {
		t.Fatalf("unexpected %+v", ve)
	}
	if IsValidation(ErrNotFound) {
		t.Fatal("not found is not a validation error")
	}
}
