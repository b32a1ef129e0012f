package domain

import "time"

// ArticleStatus represents the publication state of an article.
type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "draft"
	ArticlePublished ArticleStatus = "published"
)

// articleTransitions defines the allowed state machine transitions.
// Both states are always re-enterable; there is no terminal state.
var articleTransitions = map[ArticleStatus][]ArticleStatus{
	ArticleDraft:     {ArticlePublished},
	ArticlePublished: {ArticleDraft},
}

// Valid reports whether s is a known article status.
func (s ArticleStatus) Valid() bool {
	_, ok := articleTransitions[s]
	return ok
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ArticleStatus) CanTransitionTo(next ArticleStatus) bool {
	for _, allowed := range articleTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Article is a piece of editorial content.
type Article struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Excerpt   string        `json:"excerpt,omitempty"`
	Content   string        `json:"content"`
	Image     string        `json:"image,omitempty"`
	Status    ArticleStatus `json:"status"`
	AuthorID  string        `json:"author_id"`
	Author    string        `json:"author,omitempty"`
	Tags      []string      `json:"tags"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}
