package ports

import (
	"context"
	"time"

	"github.com/zerosmoke/health-portal/internal/core/domain"
)

// ArticleFilter narrows article listings. An empty Status lists every article.
type ArticleFilter struct {
	Status domain.ArticleStatus
}

// ArticleUpdate carries a partial update. Nil fields are left untouched.
type ArticleUpdate struct {
	Title   *string
	Excerpt *string
	Content *string
	Image   *string
	Tags    *[]string
	Status  *domain.ArticleStatus
	// ExpectStatus, when set, makes the update conditional on the stored status.
	ExpectStatus *domain.ArticleStatus
	UpdatedAt    time.Time
}

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	// List returns matching articles, newest first.
	List(ctx context.Context, filter ArticleFilter) ([]*domain.Article, error)
	// Update applies update and returns the stored result. Returns
	// domain.ErrArticleNotFound when id is unknown and domain.ErrInvalidTransition
	// when ExpectStatus does not match.
	Update(ctx context.Context, id string, update ArticleUpdate) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
}
