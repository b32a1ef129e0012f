package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// ---------------------------------------------------------------------------
// users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User
	seq       int
	touchErr  error
	lastTouch time.Time
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	c := cloneUser(u)
	c.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, up ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if up.Name != nil {
		u.Name = *up.Name
	}
	if up.Email != nil {
		u.Email = *up.Email
	}
	if up.Role != nil {
		u.Role = *up.Role
	}
	if up.AccountStatus != nil {
		u.AccountStatus = *up.AccountStatus
	}
	if up.PasswordHash != nil {
		u.PasswordHash = *up.PasswordHash
	}
	at := up.UpdatedAt
	u.UpdatedAt = &at
	return cloneUser(u), nil
}

func (r *stubUserRepo) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	if r.touchErr != nil {
		return r.touchErr
	}
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastAuthenticatedAt = &at
	r.lastTouch = at
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubTokens struct {
	issued []string
}

func (t *stubTokens) Issue(u *domain.User) (string, error) {
	tok := "token-" + u.ID + "-" + u.Role
	t.issued = append(t.issued, tok)
	return tok, nil
}

// ---------------------------------------------------------------------------
// articles
// ---------------------------------------------------------------------------

type stubArticleRepo struct {
	articles map[string]*domain.Article
	seq      int
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{articles: make(map[string]*domain.Article)}
}

func cloneArticle(a *domain.Article) *domain.Article {
	c := *a
	c.Tags = append([]string(nil), a.Tags...)
	return &c
}

func (r *stubArticleRepo) Create(_ context.Context, a *domain.Article) (*domain.Article, error) {
	r.seq++
	c := cloneArticle(a)
	c.ID = fmt.Sprintf("article-%d", r.seq)
	r.articles[c.ID] = c
	return cloneArticle(c), nil
}

func (r *stubArticleRepo) FindByID(_ context.Context, id string) (*domain.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	return cloneArticle(a), nil
}

func (r *stubArticleRepo) List(_ context.Context, f ports.ArticleFilter) ([]*domain.Article, error) {
	out := []*domain.Article{}
	for _, a := range r.articles {
		if f.Status == "" || a.Status == f.Status {
			out = append(out, cloneArticle(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubArticleRepo) Update(_ context.Context, id string, up ports.ArticleUpdate) (*domain.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	if up.ExpectStatus != nil && a.Status != *up.ExpectStatus {
		return nil, domain.ErrInvalidTransition
	}
	if up.Title != nil {
		a.Title = *up.Title
	}
	if up.Excerpt != nil {
		a.Excerpt = *up.Excerpt
	}
	if up.Content != nil {
		a.Content = *up.Content
	}
	if up.Image != nil {
		a.Image = *up.Image
	}
	if up.Tags != nil {
		a.Tags = *up.Tags
	}
	if up.Status != nil {
		a.Status = *up.Status
	}
	at := up.UpdatedAt
	a.UpdatedAt = &at
	return cloneArticle(a), nil
}

func (r *stubArticleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.articles[id]; !ok {
		return domain.ErrArticleNotFound
	}
	delete(r.articles, id)
	return nil
}

// ---------------------------------------------------------------------------
// messages
// ---------------------------------------------------------------------------

type stubMessageRepo struct {
	mu       sync.Mutex
	messages map[string]*domain.Message
	seq      int
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{messages: make(map[string]*domain.Message)}
}

func cloneMessage(m *domain.Message) *domain.Message {
	c := *m
	return &c
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	c := cloneMessage(m)
	c.ID = fmt.Sprintf("msg-%d", r.seq)
	r.messages[c.ID] = c
	return cloneMessage(c), nil
}

func (r *stubMessageRepo) FindByID(_ context.Context, id string) (*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	return cloneMessage(m), nil
}

func (r *stubMessageRepo) List(_ context.Context, f ports.MessageFilter) ([]*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Message{}
	for _, m := range r.messages {
		if f.Status == "" || m.Status == f.Status {
			out = append(out, cloneMessage(m))
		}
	}
	return out, nil
}

func (r *stubMessageRepo) Transition(_ context.Context, id string, t domain.MessageTransition) (*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	allowed := false
	for _, from := range t.From {
		if m.Status == from {
			allowed = true
		}
	}
	if !allowed {
		return nil, domain.ErrInvalidTransition
	}
	m.Status = t.To
	if t.ReplyText != "" {
		m.ReplyText = t.ReplyText
	}
	at := t.At
	m.UpdatedAt = &at
	return cloneMessage(m), nil
}

func (r *stubMessageRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.messages[id]; !ok {
		return domain.ErrMessageNotFound
	}
	delete(r.messages, id)
	return nil
}

type stubDedup struct {
	seen      map[string]string
	lookupErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]string)}
}

func (d *stubDedup) Lookup(_ context.Context, fp string) (string, error) {
	if d.lookupErr != nil {
		return "", d.lookupErr
	}
	return d.seen[fp], nil
}

func (d *stubDedup) Mark(_ context.Context, fp, id string) error {
	d.seen[fp] = id
	return nil
}

type stubNotifier struct {
	mu   sync.Mutex
	sent []domain.ReplyEmail
	err  error
}

func (n *stubNotifier) Notify(_ context.Context, e domain.ReplyEmail) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, e)
	return nil
}

// ---------------------------------------------------------------------------
// faqs
// ---------------------------------------------------------------------------

type stubFAQRepo struct {
	faqs map[string]*domain.FAQ
	seq  int
}

func newStubFAQRepo() *stubFAQRepo {
	return &stubFAQRepo{faqs: make(map[string]*domain.FAQ)}
}

func (r *stubFAQRepo) Create(_ context.Context, f *domain.FAQ) (*domain.FAQ, error) {
	r.seq++
	c := *f
	c.ID = fmt.Sprintf("faq-%d", r.seq)
	r.faqs[c.ID] = &c
	out := c
	return &out, nil
}

func (r *stubFAQRepo) FindByID(_ context.Context, id string) (*domain.FAQ, error) {
	f, ok := r.faqs[id]
	if !ok {
		return nil, domain.ErrFAQNotFound
	}
	c := *f
	return &c, nil
}

func (r *stubFAQRepo) List(_ context.Context) ([]*domain.FAQ, error) {
	out := []*domain.FAQ{}
	for _, f := range r.faqs {
		c := *f
		out = append(out, &c)
	}
	return out, nil
}

func (r *stubFAQRepo) Update(_ context.Context, id string, up ports.FAQUpdate) (*domain.FAQ, error) {
	f, ok := r.faqs[id]
	if !ok {
		return nil, domain.ErrFAQNotFound
	}
	if up.Question != nil {
		f.Question = *up.Question
	}
	if up.Answer != nil {
		f.Answer = *up.Answer
	}
	if up.Category != nil {
		f.Category = *up.Category
	}
	at := up.UpdatedAt
	f.UpdatedAt = &at
	c := *f
	return &c, nil
}

func (r *stubFAQRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.faqs[id]; !ok {
		return domain.ErrFAQNotFound
	}
	delete(r.faqs, id)
	return nil
}

var (
	_ ports.UserRepository    = (*stubUserRepo)(nil)
	_ ports.ArticleRepository = (*stubArticleRepo)(nil)
	_ ports.MessageRepository = (*stubMessageRepo)(nil)
	_ ports.FAQRepository     = (*stubFAQRepo)(nil)
	_ ports.SubmissionDedup   = (*stubDedup)(nil)
	_ ports.ReplyNotifier     = (*stubNotifier)(nil)
)
