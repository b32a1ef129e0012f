package ports

import (
	"context"
	"time"

	"github.com/zerosmoke/health-portal/internal/core/domain"
)

// FAQUpdate carries a partial update. Nil fields are left untouched.
type FAQUpdate struct {
	Question  *string
	Answer    *string
	Category  *string
	UpdatedAt time.Time
}

// FAQRepository defines persistence operations for FAQs.
type FAQRepository interface {
	Create(ctx context.Context, f *domain.FAQ) (*domain.FAQ, error)
	FindByID(ctx context.Context, id string) (*domain.FAQ, error)
	// List returns every FAQ sorted by category, newest first within a category.
	List(ctx context.Context) ([]*domain.FAQ, error)
	Update(ctx context.Context, id string, update FAQUpdate) (*domain.FAQ, error)
	Delete(ctx context.Context, id string) error
}

type CreateFAQInput struct {
	Question string
	Answer   string
	Category string
}

type UpdateFAQInput struct {
	Question *string
	Answer   *string
	Category *string
}

type FAQService interface {
	Create(ctx context.Context, input CreateFAQInput) (*domain.FAQ, error)
	Get(ctx context.Context, id string) (*domain.FAQ, error)
	List(ctx context.Context) ([]*domain.FAQ, error)
	Update(ctx context.Context, id string, input UpdateFAQInput) (*domain.FAQ, error)
	Delete(ctx context.Context, id string) error
}
