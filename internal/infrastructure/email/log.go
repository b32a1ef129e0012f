package email

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/zerosmoke/health-portal/internal/core/domain"
)

// LogMailer writes reply emails to the log instead of sending them. It backs
// local development and EMAIL_PROVIDER=log.
type LogMailer struct {
	from Sender
	log  zerolog.Logger
}

func NewLogMailer(from Sender, log zerolog.Logger) *LogMailer {
	return &LogMailer{from: from, log: log}
}

func (m *LogMailer) Send(_ context.Context, e domain.ReplyEmail) error {
	r := Render(m.from, e)
	m.log.Info().
		Str("message_id", e.MessageID).
		Str("from", r.From).
		Str("to", r.To).
		Str("subject", r.Subject).
		Str("body", r.Text).
		Msg("reply email (log transport)")
	return nil
}
