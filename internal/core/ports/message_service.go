package ports

import (
	"context"

	"github.com/zerosmoke/health-portal/internal/core/domain"
)

// SubmitMessageInput is the public contact-form payload.
type SubmitMessageInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// ReplyNotifier hands a reply email to the outbound mail path.
type ReplyNotifier interface {
	Notify(ctx context.Context, email domain.ReplyEmail) error
}

// Mailer delivers a reply email through an external transport.
type Mailer interface {
	Send(ctx context.Context, email domain.ReplyEmail) error
}

// MessageService defines use-case operations for contact messages, including
// the new -> read -> answered lifecycle.
type MessageService interface {
	Submit(ctx context.Context, input SubmitMessageInput) (*domain.Message, error)
	List(ctx context.Context, filter MessageFilter) ([]*domain.Message, error)
	// Get returns a message without side effects.
	Get(ctx context.Context, id string) (*domain.Message, error)
	// MarkAsRead moves a new message to read and returns it. Messages already
	// read or answered are returned unchanged.
	MarkAsRead(ctx context.Context, id string) (*domain.Message, error)
	// Reply records replyText, moves the message to answered and dispatches
	// the reply email. A second reply is rejected with domain.ErrAlreadyAnswered.
	Reply(ctx context.Context, id, replyText string) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
}
