package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coleLenting/theSpotWeb/internal/core/ports"
)

// UserHandler handles admin-gated user management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// MakeAdmin promotes a user to the admin role. Admin only.
//
// @Summary      Promote a user to admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  promoteResponse
// @Failure      400  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/users/{id}/make-admin [post]
func (h *UserHandler) MakeAdmin(c echo.Context) error {
	user, err := h.service.Promote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, promoteResponse{
		Message: "User promoted to admin successfully.",
		User:    user,
	})
}
