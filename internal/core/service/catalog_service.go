package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/coleLenting/theSpotWeb/internal/core/domain"
	"github.com/coleLenting/theSpotWeb/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// CatalogService implements the catalog use cases on top of the item
// repository, with an optional read-through cache for id lookups.
type CatalogService struct {
	repo   ports.ItemRepository
	cache  ports.ItemCache
	logger zerolog.Logger
}

// NewCatalogService builds a CatalogService. cache may be nil, in which
// case every Get goes straight to the repository.
func NewCatalogService(repo ports.ItemRepository, cache ports.ItemCache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, logger: logger}
}

// List returns one page of the catalog, newest first.
func (s *CatalogService) List(ctx context.Context, page, limit int) (*ports.ItemPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	items, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ItemPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Search returns every item matching the filter, unpaginated.
func (s *CatalogService) Search(ctx context.Context, filter ports.ItemFilter) ([]*domain.Item, error) {
	filter.Title = strings.TrimSpace(filter.Title)
	filter.Genre = strings.TrimSpace(filter.Genre)
	return s.repo.Search(ctx, filter)
}

// Get fetches a single item by id, consulting the cache first.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Item, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidID
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Str("item_id", id).Msg("item cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, item); err != nil {
			s.logger.Warn().Err(err).Str("item_id", id).Msg("item cache write failed")
		}
	}
	return item, nil
}

// Create validates and stores a new catalog item.
func (s *CatalogService) Create(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
	item := itemFromInput(input, nil)
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	item.Normalize()
	if err := item.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("item_id", created.ID).Str("title", created.Title).Msg("item created")
	return created, nil
}

// Update validates and replaces the writable fields of an existing item.
func (s *CatalogService) Update(ctx context.Context, id string, input ports.ItemInput) (*domain.Item, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item := itemFromInput(input, existing)
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()

	item.Normalize()
	if err := item.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.logger.Info().Str("item_id", id).Msg("item updated")
	return updated, nil
}

// Delete removes an item permanently.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if !domain.ValidID(id) {
		return domain.ErrInvalidID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.logger.Info().Str("item_id", id).Msg("item deleted")
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("item_id", id).Msg("item cache invalidation failed")
	}
}

// itemFromInput maps an input onto a fresh Item. For updates, existing
// supplies the stored InStock value when the request omitted the field;
// for creates the schema default (true) applies.
func itemFromInput(input ports.ItemInput, existing *domain.Item) *domain.Item {
	inStock := true
	if existing != nil {
		inStock = existing.InStock
	}
	if input.InStock != nil {
		inStock = *input.InStock
	}

	return &domain.Item{
		Title:       input.Title,
		Description: input.Description,
		Genre:       input.Genre,
		DailyRate:   input.DailyRate,
		InStock:     inStock,
		ReleaseYear: input.ReleaseYear,
		Director:    input.Director,
		ImageURL:    input.ImageURL,
	}
}
