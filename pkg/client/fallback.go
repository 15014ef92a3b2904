package client

import (
	"context"
	"errors"
)

// fallbackCatalog is the fixed dataset shown when the backend is
// unreachable, so the catalog view never renders empty on a network
// failure.
var fallbackCatalog = []Item{
	{ID: "fallback-01", Title: "The Matrix", Genre: "Action", DailyRate: 4.59, InStock: true, ReleaseYear: 1999, Description: "A computer programmer discovers that reality is a simulation and must choose the red pill or the blue pill."},
	{ID: "fallback-02", Title: "Inception", Genre: "Thriller", DailyRate: 5.29, InStock: true, ReleaseYear: 2010, Description: "A thief who steals corporate secrets through dream-sharing technology is given one last job: planting an idea."},
	{ID: "fallback-03", Title: "Interstellar", Genre: "Science Fiction", DailyRate: 5.89, InStock: true, ReleaseYear: 2014, Description: "Explorers travel through a wormhole in an attempt to ensure humanity's survival."},
	{ID: "fallback-04", Title: "The Dark Knight", Genre: "Action", DailyRate: 4.99, InStock: true, ReleaseYear: 2008, Description: "Batman faces the Joker as Gotham descends into chaos."},
	{ID: "fallback-05", Title: "Pulp Fiction", Genre: "Crime", DailyRate: 3.99, InStock: true, ReleaseYear: 1994, Description: "Four tales of violence and redemption intertwine in Los Angeles."},
	{ID: "fallback-06", Title: "The Godfather", Genre: "Crime", DailyRate: 4.29, InStock: true, ReleaseYear: 1972, Description: "The patriarch of an organized crime dynasty transfers control of his empire to his reluctant son."},
	{ID: "fallback-07", Title: "Forrest Gump", Genre: "Drama", DailyRate: 4.49, InStock: true, ReleaseYear: 1994, Description: "Decades of history unfold from the perspective of one remarkable man."},
	{ID: "fallback-08", Title: "Goodfellas", Genre: "Crime", DailyRate: 4.39, InStock: true, ReleaseYear: 1990, Description: "Henry Hill's life in the mob, from the inside."},
}

// Catalog fetches the first page of the catalog, degrading to the fixed
// fallback dataset when the request fails on the network. API-level errors
// (4xx/5xx) are returned as-is; only transport failures trigger the
// fallback.
func (c *Client) Catalog(ctx context.Context) ([]Item, error) {
	page, err := c.ListItems(ctx, 0, 0)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, err
		}
		out := make([]Item, len(fallbackCatalog))
		copy(out, fallbackCatalog)
		return out, nil
	}
	return page.Data, nil
}
