package ports

import (
	"context"

	"github.com/coleLenting/theSpotWeb/internal/core/domain"
)

// ItemFilter carries the search parameters for the catalog.
type ItemFilter struct {
	// Title is matched as a case-insensitive substring when non-empty.
	Title string
	// Genre is matched exactly when non-empty.
	Genre string
}

// ItemRepository defines persistence operations for catalog items.
type ItemRepository interface {
	Insert(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	// List returns a page of items sorted by creation time descending and
	// the total item count. Page is 1-based.
	List(ctx context.Context, page, limit int) ([]*domain.Item, int64, error)
	// Search returns the full unpaginated match set for the filter.
	Search(ctx context.Context, filter ItemFilter) ([]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
}
