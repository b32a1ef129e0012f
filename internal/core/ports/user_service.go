package ports

import (
	"context"

	"github.com/zerosmoke/health-portal/internal/core/domain"
)

// CreateUserInput is used by administrators to create accounts with any role.
type CreateUserInput struct {
	Name          string
	Email         string
	Password      string
	Role          string // defaults to user
	AccountStatus string // defaults to active
}

// UpdateUserInput carries an administrator's partial update.
type UpdateUserInput struct {
	Name          *string
	Email         *string
	Password      *string
	Role          *string
	AccountStatus *string
}

// UserService is the admin-only account management path. It is the only
// place where a role can be assigned or changed.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
