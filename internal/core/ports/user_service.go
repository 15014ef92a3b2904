package ports

import (
	"context"

	"github.com/coleLenting/theSpotWeb/internal/core/domain"
)

// UserService defines admin-gated user management.
type UserService interface {
	// Promote flips the target user's role to admin. It fails with
	// domain.ErrAlreadyAdmin when the target already holds the role.
	Promote(ctx context.Context, id string) (*domain.User, error)
}
