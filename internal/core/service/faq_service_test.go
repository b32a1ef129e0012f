package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

func TestFAQService_CRUD(t *testing.T) {
	svc := NewFAQService(newStubFAQRepo(), zerolog.Nop())
	svc.now = clock
	ctx := context.Background()

	f, err := svc.Create(ctx, ports.CreateFAQInput{Question: "Is vaping safer?", Answer: "Not safe."})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if f.Category != defaultFAQCategory {
		t.Fatalf("expected default category, got %q", f.Category)
	}

	updated, err := svc.Update(ctx, f.ID, ports.UpdateFAQInput{Category: strPtr("vaping")})
	if err != nil || updated.Category != "vaping" || updated.Question != "Is vaping safer?" {
		t.Fatalf("update: %+v err %v", updated, err)
	}

	if _, err := svc.Update(ctx, f.ID, ports.UpdateFAQInput{Answer: strPtr(" ")}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	list, _ := svc.List(ctx)
	if len(list) != 1 {
		t.Fatalf("expected 1 faq, got %d", len(list))
	}

	if err := svc.Delete(ctx, f.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, f.ID); !errors.Is(err, domain.ErrFAQNotFound) {
		t.Fatalf("expected ErrFAQNotFound, got %v", err)
	}
}

func TestFAQService_Create_Validation(t *testing.T) {
	svc := NewFAQService(newStubFAQRepo(), zerolog.Nop())
	if _, err := svc.Create(context.Background(), ports.CreateFAQInput{Question: "Q"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
