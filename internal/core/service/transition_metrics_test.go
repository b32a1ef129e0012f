package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/zerosmoke/health-portal/internal/api/metrics"
	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

func transitions(resource, to string) float64 {
	return testutil.ToFloat64(metrics.LifecycleTransitionsTotal.WithLabelValues(resource, to))
}

func TestArticleService_Update_CountsOnlyRealTransitions(t *testing.T) {
	svc, _ := newArticleService()
	ctx := context.Background()
	a := createArticle(t, svc, "")

	draft := string(domain.ArticleDraft)
	beforeDraft := transitions("article", draft)
	if _, err := svc.Update(ctx, a.ID, ports.UpdateArticleInput{Status: &draft}); err != nil {
		t.Fatalf("same-status update: %v", err)
	}
	if got := transitions("article", draft) - beforeDraft; got != 0 {
		t.Fatalf("unchanged status counted %v transitions", got)
	}

	published := string(domain.ArticlePublished)
	beforePublished := transitions("article", published)
	if _, err := svc.Update(ctx, a.ID, ports.UpdateArticleInput{Status: &published}); err != nil {
		t.Fatalf("publish via update: %v", err)
	}
	if got := transitions("article", published) - beforePublished; got != 1 {
		t.Fatalf("expected one published transition, got %v", got)
	}

	beforeDraft = transitions("article", draft)
	if _, err := svc.Unpublish(ctx, a.ID); err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if got := transitions("article", draft) - beforeDraft; got != 1 {
		t.Fatalf("expected one draft transition, got %v", got)
	}
}

func TestMessageService_CountsReadAndAnswered(t *testing.T) {
	f := newMessageFixture()
	ctx := context.Background()
	m := f.submit(t, "Counting")

	read := string(domain.MessageRead)
	beforeRead := transitions("message", read)
	if _, err := f.svc.MarkAsRead(ctx, m.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if _, err := f.svc.MarkAsRead(ctx, m.ID); err != nil {
		t.Fatalf("mark read again: %v", err)
	}
	if got := transitions("message", read) - beforeRead; got != 1 {
		t.Fatalf("expected one read transition, got %v", got)
	}

	answered := string(domain.MessageAnswered)
	beforeAnswered := transitions("message", answered)
	if _, err := f.svc.Reply(ctx, m.ID, "Thanks"); err != nil {
		t.Fatalf("reply: %v", err)
	}
	if _, err := f.svc.Reply(ctx, m.ID, "Again"); err == nil {
		t.Fatalf("second reply should fail")
	}
	if got := transitions("message", answered) - beforeAnswered; got != 1 {
		t.Fatalf("expected one answered transition, got %v", got)
	}
}
