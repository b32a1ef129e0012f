package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/zerosmoke/health-portal/internal/api/metrics"
	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

// ArticleService implements article authoring and the draft/published lifecycle.
type ArticleService struct {
	repo   ports.ArticleRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewArticleService(repo ports.ArticleRepository, logger zerolog.Logger) *ArticleService {
	return &ArticleService{repo: repo, logger: logger, now: time.Now}
}

// Create stores a new article. An empty status defaults to draft.
func (s *ArticleService) Create(ctx context.Context, in ports.CreateArticleInput) (*domain.Article, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.Content) == "" || in.AuthorID == "" {
		return nil, domain.ErrValidation
	}

	status := domain.ArticleDraft
	if in.Status != "" {
		status = domain.ArticleStatus(in.Status)
		if !status.Valid() {
			return nil, domain.ErrValidation
		}
	}

	created, err := s.repo.Create(ctx, &domain.Article{
		Title:     title,
		Excerpt:   strings.TrimSpace(in.Excerpt),
		Content:   in.Content,
		Image:     strings.TrimSpace(in.Image),
		Status:    status,
		AuthorID:  in.AuthorID,
		Author:    in.Author,
		Tags:      cleanTags(in.Tags),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("article_id", created.ID).Str("status", string(status)).Msg("article created")
	return created, nil
}

// Get returns an article. Drafts look like missing articles unless includeDrafts is set.
func (s *ArticleService) Get(ctx context.Context, id string, includeDrafts bool) (*domain.Article, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !includeDrafts && a.Status != domain.ArticlePublished {
		return nil, domain.ErrArticleNotFound
	}
	return a, nil
}

func (s *ArticleService) List(ctx context.Context, filter ports.ArticleFilter) ([]*domain.Article, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.ErrValidation
	}
	return s.repo.List(ctx, filter)
}

// Update applies a partial update. A status change must be a legal transition
// from the stored status and is applied conditionally on that status.
func (s *ArticleService) Update(ctx context.Context, id string, in ports.UpdateArticleInput) (*domain.Article, error) {
	update := ports.ArticleUpdate{
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Image:     in.Image,
		UpdatedAt: s.now().UTC(),
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, domain.ErrValidation
		}
		update.Title = &title
	}
	if in.Content != nil && strings.TrimSpace(*in.Content) == "" {
		return nil, domain.ErrValidation
	}
	if in.Tags != nil {
		tags := cleanTags(*in.Tags)
		update.Tags = &tags
	}

	if in.Status != nil {
		next := domain.ArticleStatus(*in.Status)
		if !next.Valid() {
			return nil, domain.ErrValidation
		}
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Status != next {
			if !current.Status.CanTransitionTo(next) {
				return nil, domain.ErrInvalidTransition
			}
			update.Status = &next
			update.ExpectStatus = &current.Status
		}
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	if update.Status != nil {
		metrics.LifecycleTransitionsTotal.WithLabelValues("article", string(*update.Status)).Inc()
	}
	s.logger.Info().Str("article_id", id).Str("status", string(updated.Status)).Msg("article updated")
	return updated, nil
}

func (s *ArticleService) Publish(ctx context.Context, id string) (*domain.Article, error) {
	return s.transition(ctx, id, domain.ArticlePublished)
}

func (s *ArticleService) Unpublish(ctx context.Context, id string) (*domain.Article, error) {
	return s.transition(ctx, id, domain.ArticleDraft)
}

func (s *ArticleService) transition(ctx context.Context, id string, next domain.ArticleStatus) (*domain.Article, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.repo.Update(ctx, id, ports.ArticleUpdate{
		Status:       &next,
		ExpectStatus: &current.Status,
		UpdatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			s.logger.Warn().Str("article_id", id).Str("to", string(next)).Msg("concurrent article status change")
		}
		return nil, err
	}

	metrics.LifecycleTransitionsTotal.WithLabelValues("article", string(next)).Inc()
	s.logger.Info().
		Str("article_id", id).
		Str("from", string(current.Status)).
		Str("to", string(next)).
		Msg("article status changed")
	return updated, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("article_id", id).Msg("article deleted")
	return nil
}

// cleanTags trims tags and drops blanks and duplicates, keeping order.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
