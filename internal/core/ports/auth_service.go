package ports

import (
	"context"

	"github.com/coleLenting/theSpotWeb/internal/core/domain"
)

// AuthResult is returned by every operation that (re)issues a token.
type AuthResult struct {
	Token string
	User  *domain.User
}

// UpdateProfileInput carries a self-service profile update. Name is applied
// when non-empty after trimming. When either password field is set, both
// are required and CurrentPassword must match the stored hash.
type UpdateProfileInput struct {
	Name            string
	CurrentPassword string
	NewPassword     string
}

// AuthService defines the account self-service use cases.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*AuthResult, error)
	DeleteAccount(ctx context.Context, userID string) error
}
