package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/zerosmoke/health-portal/internal/auth"
	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

// UserService implements administrator account management.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger, now: time.Now}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create adds an account with an explicit role and status.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	email := normalizeEmail(in.Email)
	if !strings.Contains(email, "@") || len(in.Password) < minPasswordLen {
		return nil, domain.ErrValidation
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	status := in.AccountStatus
	if status == "" {
		status = domain.AccountActive
	}
	if !domain.IsValidRole(role) || !domain.IsValidAccountStatus(status) {
		return nil, domain.ErrValidation
	}

	hash, err := auth.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:          displayName(in.Name, email),
		Email:         email,
		PasswordHash:  hash,
		Role:          role,
		AccountStatus: status,
		CreatedAt:     s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", role).Msg("user created by admin")
	return created, nil
}

// Update applies an administrator's partial update, including role changes.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	update := ports.UserUpdate{UpdatedAt: s.now().UTC()}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrValidation
		}
		update.Name = &name
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if !strings.Contains(email, "@") {
			return nil, domain.ErrValidation
		}
		update.Email = &email
	}
	if in.Role != nil {
		if !domain.IsValidRole(*in.Role) {
			return nil, domain.ErrValidation
		}
		update.Role = in.Role
	}
	if in.AccountStatus != nil {
		if !domain.IsValidAccountStatus(*in.AccountStatus) {
			return nil, domain.ErrValidation
		}
		update.AccountStatus = in.AccountStatus
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLen {
			return nil, domain.ErrValidation
		}
		hash, err := auth.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	ev := s.logger.Info().Str("user_id", id)
	if in.Role != nil {
		ev = ev.Str("role", *in.Role)
	}
	ev.Msg("user updated by admin")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
