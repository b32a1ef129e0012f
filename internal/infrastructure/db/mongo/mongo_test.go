package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

func TestObjectID(t *testing.T) {
	want := primitive.NewObjectID()
	got, ok := objectID(want.Hex())
	if !ok || got != want {
		t.Fatalf("expected %s, got %s (ok=%v)", want.Hex(), got.Hex(), ok)
	}
	for _, bad := range []string{"", "nope", "123", want.Hex() + "0"} {
		if _, ok := objectID(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

// Malformed ids are answered before any round trip, so a zero repository is enough.
func TestRepositories_MalformedIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	if _, err := (&UserRepository{}).FindByID(ctx, "x"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user find: %v", err)
	}
	if err := (&UserRepository{}).TouchLastLogin(ctx, "x", now); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user touch: %v", err)
	}
	if _, err := (&ArticleRepository{}).FindByID(ctx, "x"); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("article find: %v", err)
	}
	if _, err := (&ArticleRepository{}).Update(ctx, "x", ports.ArticleUpdate{UpdatedAt: now}); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("article update: %v", err)
	}
	if _, err := (&MessageRepository{}).Transition(ctx, "x", domain.MessageTransition{To: domain.MessageRead}); !errors.Is(err, domain.ErrMessageNotFound) {
		t.Fatalf("message transition: %v", err)
	}
	if err := (&MessageRepository{}).Delete(ctx, "x"); !errors.Is(err, domain.ErrMessageNotFound) {
		t.Fatalf("message delete: %v", err)
	}
	if _, err := (&FAQRepository{}).FindByID(ctx, "x"); !errors.Is(err, domain.ErrFAQNotFound) {
		t.Fatalf("faq find: %v", err)
	}
}

func TestArticleDoc_ToDomainNeverNilTags(t *testing.T) {
	doc := articleDoc{ID: primitive.NewObjectID(), Title: "t", Status: "draft"}
	a := doc.toDomain()
	if a.Tags == nil || len(a.Tags) != 0 {
		t.Fatalf("expected empty tag slice, got %#v", a.Tags)
	}
	if a.Status != domain.ArticleDraft || a.ID != doc.ID.Hex() {
		t.Fatalf("unexpected mapping %+v", a)
	}
}

func TestUserDoc_ToDomain(t *testing.T) {
	login := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	doc := userDoc{
		ID:           primitive.NewObjectID(),
		Email:        "a@b.com",
		PasswordHash: "hash",
		Role:         domain.RoleAdmin,
		Status:       domain.AccountInactive,
		LastLoginAt:  &login,
	}
	u := doc.toDomain()
	if u.AccountStatus != domain.AccountInactive || u.IsActive() {
		t.Fatalf("status not mapped: %+v", u)
	}
	if u.LastAuthenticatedAt == nil || !u.LastAuthenticatedAt.Equal(login) {
		t.Fatalf("last login not mapped: %+v", u)
	}
	if u.PasswordHash != "hash" || u.Role != domain.RoleAdmin {
		t.Fatalf("unexpected mapping %+v", u)
	}
}

func TestMessageDoc_ToDomain(t *testing.T) {
	doc := messageDoc{ID: primitive.NewObjectID(), Body: "How?", Status: "answered", ReplyText: "Thanks"}
	m := doc.toDomain()
	if m.Status != domain.MessageAnswered || m.Body != "How?" || m.ReplyText != "Thanks" {
		t.Fatalf("unexpected mapping %+v", m)
	}
}
