package ports

import (
	"context"

	"github.com/coleLenting/theSpotWeb/internal/core/domain"
)

// ItemCache is a read-through cache for single item lookups. Get returns
// (nil, nil) on a miss; cache failures are reported but treated as misses
// by callers so the store remains the source of truth.
type ItemCache interface {
	Get(ctx context.Context, id string) (*domain.Item, error)
	Set(ctx context.Context, item *domain.Item) error
	Invalidate(ctx context.Context, id string) error
}
