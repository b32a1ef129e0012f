package ports

import (
	"context"
	"time"

	"github.com/zerosmoke/health-portal/internal/core/domain"
)

// UserUpdate carries a partial update. Nil fields are left untouched;
// UpdatedAt is always stamped.
type UserUpdate struct {
	Name          *string
	Email         *string
	Role          *string
	AccountStatus *string
	PasswordHash  *string
	UpdatedAt     time.Time
}

// UserRepository defines persistence operations for identities.
type UserRepository interface {
	// Create inserts a user and returns it with its assigned ID.
	// Returns domain.ErrUserExists when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
