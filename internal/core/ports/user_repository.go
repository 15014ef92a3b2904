package ports

import (
	"context"

	"github.com/coleLenting/theSpotWeb/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Implementations must enforce email uniqueness and return
// domain.ErrEmailTaken on a duplicate insert or update.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Update persists name, password hash and role changes.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
