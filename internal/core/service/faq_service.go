package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

const defaultFAQCategory = "general"

type FAQService struct {
	repo   ports.FAQRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewFAQService(repo ports.FAQRepository, logger zerolog.Logger) *FAQService {
	return &FAQService{repo: repo, logger: logger, now: time.Now}
}

func (s *FAQService) Create(ctx context.Context, in ports.CreateFAQInput) (*domain.FAQ, error) {
	question := strings.TrimSpace(in.Question)
	answer := strings.TrimSpace(in.Answer)
	if question == "" || answer == "" {
		return nil, domain.ErrValidation
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultFAQCategory
	}

	created, err := s.repo.Create(ctx, &domain.FAQ{
		Question:  question,
		Answer:    answer,
		Category:  category,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("faq_id", created.ID).Msg("faq created")
	return created, nil
}

func (s *FAQService) Get(ctx context.Context, id string) (*domain.FAQ, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *FAQService) List(ctx context.Context) ([]*domain.FAQ, error) {
	return s.repo.List(ctx)
}

func (s *FAQService) Update(ctx context.Context, id string, in ports.UpdateFAQInput) (*domain.FAQ, error) {
	update := ports.FAQUpdate{UpdatedAt: s.now().UTC()}
	for _, f := range []struct {
		in  *string
		out **string
	}{
		{in.Question, &update.Question},
		{in.Answer, &update.Answer},
		{in.Category, &update.Category},
	} {
		if f.in == nil {
			continue
		}
		v := strings.TrimSpace(*f.in)
		if v == "" {
			return nil, domain.ErrValidation
		}
		*f.out = &v
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("faq_id", id).Msg("faq updated")
	return updated, nil
}

func (s *FAQService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("faq_id", id).Msg("faq deleted")
	return nil
}
