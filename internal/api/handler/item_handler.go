package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/coleLenting/theSpotWeb/internal/api/metrics"
	"github.com/coleLenting/theSpotWeb/internal/core/ports"
)

// ItemHandler handles HTTP requests for the rental catalog.
type ItemHandler struct {
	service ports.CatalogService
}

func NewItemHandler(service ports.CatalogService) *ItemHandler {
	return &ItemHandler{service: service}
}

// List returns one page of the catalog, newest first.
//
// @Summary      List catalog items
// @Tags         items
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10, max 100)"
// @Success      200    {object}  listItemsResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listItemsResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Search returns the full match set for a title substring and/or genre.
//
// @Summary      Search catalog items
// @Tags         items
// @Produce      json
// @Param        title  query     string  false  "Case-insensitive title substring"
// @Param        genre  query     string  false  "Exact genre"
// @Success      200    {array}   domain.Item
// @Router       /api/items/search [get]
func (h *ItemHandler) Search(c echo.Context) error {
	items, err := h.service.Search(c.Request().Context(), ports.ItemFilter{
		Title: c.QueryParam("title"),
		Genre: c.QueryParam("genre"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

// Get fetches a single catalog item by id.
//
// @Summary      Get a catalog item
// @Tags         items
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  domain.Item
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create stores a new catalog item. Admin only.
//
// @Summary      Create a catalog item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      itemRequest  true  "Item details"
// @Success      201   {object}  domain.Item
// @Failure      400   {object}  detailedResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Create(c.Request().Context(), toItemInput(req))
	if err != nil {
		return err
	}

	metrics.ItemsCreatedTotal.WithLabelValues(item.Genre).Inc()
	return c.JSON(http.StatusCreated, item)
}

// Update replaces the writable fields of an existing item. Admin only.
//
// @Summary      Update a catalog item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Item id"
// @Param        body  body      itemRequest  true  "Item details"
// @Success      200   {object}  domain.Item
// @Failure      400   {object}  detailedResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Update(c.Request().Context(), c.Param("id"), toItemInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}

// Delete removes a catalog item permanently. Admin only.
//
// @Summary      Delete a catalog item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Movie deleted successfully."})
}

func toItemInput(req itemRequest) ports.ItemInput {
	return ports.ItemInput{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		DailyRate:   req.DailyRate,
		InStock:     req.InStock,
		ReleaseYear: req.ReleaseYear,
		Director:    req.Director,
		ImageURL:    req.ImageURL,
	}
}
