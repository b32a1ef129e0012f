package ports

import (
	"context"

	"github.com/zerosmoke/health-portal/internal/core/domain"
)

// CreateArticleInput carries all data needed to create an article.
type CreateArticleInput struct {
	Title    string
	Excerpt  string
	Content  string
	Image    string
	Status   string // draft or published; empty means draft
	Tags     []string
	AuthorID string
	Author   string
}

// UpdateArticleInput carries a partial update. A nil Status leaves the
// publication state unchanged.
type UpdateArticleInput struct {
	Title   *string
	Excerpt *string
	Content *string
	Image   *string
	Tags    *[]string
	Status  *string
}

// ArticleService defines use-case operations for articles, including the
// draft/published lifecycle.
type ArticleService interface {
	Create(ctx context.Context, input CreateArticleInput) (*domain.Article, error)
	// Get returns an article. Drafts are hidden unless includeDrafts is set.
	Get(ctx context.Context, id string, includeDrafts bool) (*domain.Article, error)
	List(ctx context.Context, filter ArticleFilter) ([]*domain.Article, error)
	Update(ctx context.Context, id string, input UpdateArticleInput) (*domain.Article, error)
	Publish(ctx context.Context, id string) (*domain.Article, error)
	Unpublish(ctx context.Context, id string) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
}
