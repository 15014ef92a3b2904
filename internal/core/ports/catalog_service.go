package ports

import (
	"context"

	"github.com/coleLenting/theSpotWeb/internal/core/domain"
)

// ItemInput carries the writable fields of a catalog item. InStock is a
// pointer so an omitted field keeps the stored (or default) value.
type ItemInput struct {
	Title       string
	Description string
	Genre       string
	DailyRate   float64
	InStock     *bool
	ReleaseYear int
	Director    string
	ImageURL    string
}

// ItemPage is one page of the catalog listing.
type ItemPage struct {
	Items      []*domain.Item
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CatalogService defines the catalog use cases. Create, Update and Delete
// are admin-gated at the transport layer.
type CatalogService interface {
	List(ctx context.Context, page, limit int) (*ItemPage, error)
	Search(ctx context.Context, filter ItemFilter) ([]*domain.Item, error)
	Get(ctx context.Context, id string) (*domain.Item, error)
	Create(ctx context.Context, input ItemInput) (*domain.Item, error)
	Update(ctx context.Context, id string, input ItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
}
