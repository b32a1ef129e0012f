package ports

import (
	"context"

	"github.com/zerosmoke/health-portal/internal/core/domain"
)

// TokenIssuer signs session tokens for authenticated identities.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// RegisterInput carries the self-service registration fields.
// Role is not accepted: self-registered identities are always users.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is returned on successful login or registration.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
