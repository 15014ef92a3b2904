package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coleLenting/theSpotWeb/internal/core/domain"
	"github.com/coleLenting/theSpotWeb/internal/core/ports"
)

// UserService implements admin-gated user management.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Promote flips the target user's role to admin.
func (s *UserService) Promote(ctx context.Context, id string) (*domain.User, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidID
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Role == domain.RoleAdmin {
		return nil, domain.ErrAlreadyAdmin
	}

	user.Role = domain.RoleAdmin
	user.UpdatedAt = time.Now().UTC()

	promoted, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", promoted.ID).Str("email", promoted.Email).Msg("user promoted to admin")
	return promoted, nil
}
