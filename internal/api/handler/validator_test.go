package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/zerosmoke/health-portal/internal/core/domain"
)

func TestValidator_WrapsFieldErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{Email: "bad", Password: "123"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "email") || !strings.Contains(err.Error(), "password") {
		t.Fatalf("expected both fields named, got %q", err.Error())
	}
}

func TestValidator_Accepts(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(&registerRequest{Email: "a@b.com", Password: "secret1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubmitMessageRequest_Text(t *testing.T) {
	if got := (submitMessageRequest{Body: "b", Message: "m"}).text(); got != "m" {
		t.Fatalf("unexpected text %q", got)
	}
	if got := (submitMessageRequest{Body: "b"}).text(); got != "b" {
		t.Fatalf("expected body fallback, got %q", got)
	}
}
