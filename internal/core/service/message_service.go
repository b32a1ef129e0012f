package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/zerosmoke/health-portal/internal/api/metrics"
	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

// MessageService implements contact-form intake and the new -> read -> answered
// lifecycle. The reply email is handed to the notifier after the answered
// status is committed; delivery failures never undo the status.
type MessageService struct {
	repo     ports.MessageRepository
	dedup    ports.SubmissionDedup
	notifier ports.ReplyNotifier
	logger   zerolog.Logger
	now      func() time.Time
}

// NewMessageService builds the service. dedup may be nil to accept every
// submission.
func NewMessageService(repo ports.MessageRepository, dedup ports.SubmissionDedup, notifier ports.ReplyNotifier, logger zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, dedup: dedup, notifier: notifier, logger: logger, now: time.Now}
}

// Submit stores a contact message with status new. An identical submission
// seen within the dedup window returns the message already stored.
func (s *MessageService) Submit(ctx context.Context, in ports.SubmitMessageInput) (*domain.Message, error) {
	msg := &domain.Message{
		Name:    strings.TrimSpace(in.Name),
		Email:   normalizeEmail(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Body:    strings.TrimSpace(in.Body),
	}
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Body == "" {
		return nil, domain.ErrValidation
	}

	fp := submissionFingerprint(msg)
	if existing := s.lookupDuplicate(ctx, fp); existing != nil {
		return existing, nil
	}

	msg.Status = domain.MessageNew
	msg.CreatedAt = s.now().UTC()
	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	if s.dedup != nil {
		if err := s.dedup.Mark(ctx, fp, created.ID); err != nil {
			s.logger.Warn().Err(err).Str("message_id", created.ID).Msg("failed to mark submission")
		}
	}

	s.logger.Info().Str("message_id", created.ID).Msg("contact message received")
	return created, nil
}

func (s *MessageService) lookupDuplicate(ctx context.Context, fp string) *domain.Message {
	if s.dedup == nil {
		return nil
	}
	id, err := s.dedup.Lookup(ctx, fp)
	if err != nil {
		s.logger.Warn().Err(err).Msg("dedup lookup failed")
		return nil
	}
	if id == "" {
		return nil
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	s.logger.Debug().Str("message_id", id).Msg("duplicate contact submission")
	return existing
}

func (s *MessageService) List(ctx context.Context, filter ports.MessageFilter) ([]*domain.Message, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.ErrValidation
	}
	return s.repo.List(ctx, filter)
}

func (s *MessageService) Get(ctx context.Context, id string) (*domain.Message, error) {
	return s.repo.FindByID(ctx, id)
}

// MarkAsRead moves a new message to read. Anything already past new is
// returned as stored.
func (s *MessageService) MarkAsRead(ctx context.Context, id string) (*domain.Message, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(domain.MessageRead) {
		return current, nil
	}

	updated, err := s.repo.Transition(ctx, id, domain.MessageTransition{
		From: []domain.MessageStatus{domain.MessageNew},
		To:   domain.MessageRead,
		At:   s.now().UTC(),
	})
	if errors.Is(err, domain.ErrInvalidTransition) {
		return s.repo.FindByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	metrics.LifecycleTransitionsTotal.WithLabelValues("message", string(domain.MessageRead)).Inc()
	s.logger.Info().Str("message_id", id).Msg("message marked as read")
	return updated, nil
}

// Reply records the reply, moves the message to answered and queues the reply
// email. A message can be answered once.
func (s *MessageService) Reply(ctx context.Context, id, replyText string) (*domain.Message, error) {
	replyText = strings.TrimSpace(replyText)
	if replyText == "" {
		return nil, domain.ErrValidation
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(domain.MessageAnswered) {
		return nil, domain.ErrAlreadyAnswered
	}

	updated, err := s.repo.Transition(ctx, id, domain.MessageTransition{
		From:      domain.SourcesFor(domain.MessageAnswered),
		To:        domain.MessageAnswered,
		ReplyText: replyText,
		At:        s.now().UTC(),
	})
	if errors.Is(err, domain.ErrInvalidTransition) {
		return nil, domain.ErrAlreadyAnswered
	}
	if err != nil {
		return nil, err
	}

	metrics.LifecycleTransitionsTotal.WithLabelValues("message", string(domain.MessageAnswered)).Inc()
	s.logger.Info().Str("message_id", id).Msg("message answered")

	email := domain.ReplyEmail{
		MessageID: updated.ID,
		To:        updated.Email,
		Subject:   "Re: " + updated.Subject,
		Text:      replyText,
	}
	if err := s.notifier.Notify(ctx, email); err != nil {
		s.logger.Error().Err(err).Str("message_id", id).Msg("failed to queue reply email")
	}
	return updated, nil
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("message_id", id).Msg("message deleted")
	return nil
}

func submissionFingerprint(m *domain.Message) string {
	h := sha256.New()
	for _, part := range []string{m.Email, m.Subject, m.Body} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
