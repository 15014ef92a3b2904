package handler

import "github.com/coleLenting/theSpotWeb/internal/core/domain"

// itemRequest carries the writable item fields for create and update.
// Enum membership, numeric bounds and the image URL pattern are enforced
// by the domain validator; InStock is a pointer so an omitted field keeps
// the stored (or default) value.
type itemRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	DailyRate   float64 `json:"dailyRate"`
	InStock     *bool   `json:"inStock"`
	ReleaseYear int     `json:"releaseYear"`
	Director    string  `json:"director"`
	ImageURL    string  `json:"imageUrl"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listItemsResponse struct {
	Data       []*domain.Item     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type promoteResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
