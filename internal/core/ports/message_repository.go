package ports

import (
	"context"

	"github.com/zerosmoke/health-portal/internal/core/domain"
)

// MessageFilter narrows message listings. An empty Status lists every message.
type MessageFilter struct {
	Status domain.MessageStatus
}

// MessageRepository defines persistence operations for contact messages.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	// List returns matching messages, newest first.
	List(ctx context.Context, filter MessageFilter) ([]*domain.Message, error)
	// Transition atomically applies t when the stored status is one of t.From,
	// stamping updated_at and, when non-empty, reply_text. Returns
	// domain.ErrMessageNotFound for an unknown id and domain.ErrInvalidTransition
	// when the stored status is not an accepted source.
	Transition(ctx context.Context, id string, t domain.MessageTransition) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
}

// SubmissionDedup remembers recent contact-form submissions by fingerprint.
type SubmissionDedup interface {
	// Lookup returns the message ID recorded for fingerprint, or "" if none.
	Lookup(ctx context.Context, fingerprint string) (string, error)
	Mark(ctx context.Context, fingerprint, messageID string) error
}
