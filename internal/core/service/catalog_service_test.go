package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/coleLenting/theSpotWeb/internal/core/domain"
	"github.com/coleLenting/theSpotWeb/internal/core/ports"
)

type stubItemRepo struct {
	items  []*domain.Item
	nextID int
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{}
}

func cloneItem(item *domain.Item) *domain.Item {
	clone := *item
	return &clone
}

func (r *stubItemRepo) Insert(_ context.Context, item *domain.Item) (*domain.Item, error) {
	r.nextID++
	copy := cloneItem(item)
	copy.ID = fmt.Sprintf("%024x", r.nextID)
	// Newest first, matching the created_at sort of the real repository.
	r.items = append([]*domain.Item{copy}, r.items...)
	return cloneItem(copy), nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id string) (*domain.Item, error) {
	for _, item := range r.items {
		if item.ID == id {
			return cloneItem(item), nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (r *stubItemRepo) List(_ context.Context, page, limit int) ([]*domain.Item, int64, error) {
	start := (page - 1) * limit
	if start >= len(r.items) {
		return nil, int64(len(r.items)), nil
	}
	end := start + limit
	if end > len(r.items) {
		end = len(r.items)
	}
	out := make([]*domain.Item, 0, end-start)
	for _, item := range r.items[start:end] {
		out = append(out, cloneItem(item))
	}
	return out, int64(len(r.items)), nil
}

func (r *stubItemRepo) Search(_ context.Context, filter ports.ItemFilter) ([]*domain.Item, error) {
	var out []*domain.Item
	for _, item := range r.items {
		if filter.Genre != "" && item.Genre != filter.Genre {
			continue
		}
		out = append(out, cloneItem(item))
	}
	return out, nil
}

func (r *stubItemRepo) Update(_ context.Context, item *domain.Item) (*domain.Item, error) {
	for i, existing := range r.items {
		if existing.ID == item.ID {
			r.items[i] = cloneItem(item)
			return cloneItem(item), nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (r *stubItemRepo) Delete(_ context.Context, id string) error {
	for i, existing := range r.items {
		if existing.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrItemNotFound
}

type stubItemCache struct {
	entries     map[string]*domain.Item
	gets, sets  int
	invalidated []string
}

func newStubItemCache() *stubItemCache {
	return &stubItemCache{entries: make(map[string]*domain.Item)}
}

func (c *stubItemCache) Get(_ context.Context, id string) (*domain.Item, error) {
	c.gets++
	item, ok := c.entries[id]
	if !ok {
		return nil, nil
	}
	return cloneItem(item), nil
}

func (c *stubItemCache) Set(_ context.Context, item *domain.Item) error {
	c.sets++
	c.entries[item.ID] = cloneItem(item)
	return nil
}

func (c *stubItemCache) Invalidate(_ context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	delete(c.entries, id)
	return nil
}

func newTestCatalog(repo ports.ItemRepository, cache ports.ItemCache) *CatalogService {
	return NewCatalogService(repo, cache, zerolog.Nop())
}

func validInput(title string) ports.ItemInput {
	return ports.ItemInput{
		Title:     title,
		Genre:     "Action",
		DailyRate: 3.99,
	}
}

func seedItems(t *testing.T, svc *CatalogService, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		if _, err := svc.Create(context.Background(), validInput(fmt.Sprintf("Movie %02d", i))); err != nil {
			t.Fatalf("seeding item %d: %v", i, err)
		}
	}
}

func TestCatalogService_List_Pagination(t *testing.T) {
	svc := newTestCatalog(newStubItemRepo(), nil)
	seedItems(t, svc, 25)

	page, err := svc.List(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 25 || page.Page != 2 || page.Limit != 10 {
		t.Fatalf("unexpected page metadata: %+v", page)
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", page.TotalPages)
	}
	if len(page.Items) != 10 {
		t.Fatalf("expected 10 items on page 2, got %d", len(page.Items))
	}
	// Newest first: page 2 of 25 holds movies 15 down to 6.
	if page.Items[0].Title != "Movie 15" || page.Items[9].Title != "Movie 06" {
		t.Fatalf("unexpected page window: first=%q last=%q", page.Items[0].Title, page.Items[9].Title)
	}
}

func TestCatalogService_List_Defaults(t *testing.T) {
	svc := newTestCatalog(newStubItemRepo(), nil)
	seedItems(t, svc, 12)

	page, err := svc.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Fatalf("expected defaults page=1 limit=10, got page=%d limit=%d", page.Page, page.Limit)
	}
	if len(page.Items) != 10 || page.TotalPages != 2 {
		t.Fatalf("unexpected page: items=%d totalPages=%d", len(page.Items), page.TotalPages)
	}
}

func TestCatalogService_List_LimitClamped(t *testing.T) {
	svc := newTestCatalog(newStubItemRepo(), nil)
	seedItems(t, svc, 3)

	page, err := svc.List(context.Background(), 1, 5000)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Limit != 100 {
		t.Fatalf("expected limit clamped to 100, got %d", page.Limit)
	}
}

func TestCatalogService_List_EmptyPageBeyondEnd(t *testing.T) {
	svc := newTestCatalog(newStubItemRepo(), nil)
	seedItems(t, svc, 5)

	page, err := svc.List(context.Background(), 9, 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page.Items) != 0 || page.Total != 5 {
		t.Fatalf("expected empty page with total intact, got %+v", page)
	}
}

func TestCatalogService_Get_InvalidID(t *testing.T) {
	svc := newTestCatalog(newStubItemRepo(), nil)

	if _, err := svc.Get(context.Background(), "not-a-hex-id"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestCatalogService_Get_NotFound(t *testing.T) {
	svc := newTestCatalog(newStubItemRepo(), nil)

	if _, err := svc.Get(context.Background(), fmt.Sprintf("%024x", 999)); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestCatalogService_Get_CacheReadThrough(t *testing.T) {
	repo := newStubItemRepo()
	cache := newStubItemCache()
	svc := newTestCatalog(repo, cache)

	created, err := svc.Create(context.Background(), validInput("Cached Movie"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// First read misses the cache and populates it.
	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("first get failed: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	// Second read is served from the cache even after the repo record is
	// gone underneath it.
	repo.items = nil
	item, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("cached get failed: %v", err)
	}
	if item.Title != "Cached Movie" {
		t.Fatalf("unexpected cached item: %+v", item)
	}
}

func TestCatalogService_Create_AppliesDefaults(t *testing.T) {
	svc := newTestCatalog(newStubItemRepo(), nil)

	created, err := svc.Create(context.Background(), ports.ItemInput{
		Title:     "  Untitled Gem  ",
		DailyRate: 1.50,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Title != "Untitled Gem" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.Genre != "Drama" {
		t.Fatalf("expected default genre Drama, got %q", created.Genre)
	}
	if !created.InStock {
		t.Fatalf("expected in_stock to default to true")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestCatalogService_Create_Invalid(t *testing.T) {
	svc := newTestCatalog(newStubItemRepo(), nil)

	_, err := svc.Create(context.Background(), ports.ItemInput{
		Title:       "Bad",
		Genre:       "Polka",
		DailyRate:   -1,
		ReleaseYear: time.Now().Year() + 5,
		ImageURL:    "ftp://example.com/poster.bmp",
	})
	var ve domain.ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(ve) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(ve), ve)
	}
}

func TestCatalogService_Update_PreservesCreatedAtAndStock(t *testing.T) {
	repo := newStubItemRepo()
	cache := newStubItemCache()
	svc := newTestCatalog(repo, cache)

	created, err := svc.Create(context.Background(), validInput("Original"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// InStock omitted on update keeps the stored value.
	updated, err := svc.Update(context.Background(), created.ID, ports.ItemInput{
		Title:     "Renamed",
		Genre:     "Comedy",
		DailyRate: 2.99,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Renamed" || updated.Genre != "Comedy" {
		t.Fatalf("unexpected updated item: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected created_at preserved, got %v vs %v", updated.CreatedAt, created.CreatedAt)
	}
	if !updated.InStock {
		t.Fatalf("expected stored in_stock preserved when field omitted")
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != created.ID {
		t.Fatalf("expected cache invalidation for %s, got %v", created.ID, cache.invalidated)
	}
}

func TestCatalogService_Update_InvalidID(t *testing.T) {
	svc := newTestCatalog(newStubItemRepo(), nil)

	if _, err := svc.Update(context.Background(), "nope", validInput("X")); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestCatalogService_Delete(t *testing.T) {
	repo := newStubItemRepo()
	cache := newStubItemCache()
	svc := newTestCatalog(repo, cache)

	created, err := svc.Create(context.Background(), validInput("Doomed"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound on second delete, got %v", err)
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("expected one cache invalidation, got %d", len(cache.invalidated))
	}
}

func TestCatalogService_Search_TrimsFilter(t *testing.T) {
	repo := newStubItemRepo()
	svc := newTestCatalog(repo, nil)
	seedItems(t, svc, 2)

	items, err := svc.Search(context.Background(), ports.ItemFilter{Genre: "  Action  "})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected trimmed genre to match both items, got %d", len(items))
	}
}
