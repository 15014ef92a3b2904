package handler

import "github.com/coleLenting/theSpotWeb/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name"     validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// updateProfileRequest carries a partial self-update. Name applies when
// non-empty; the password pair is validated together in the service.
type updateProfileRequest struct {
	Name            string `json:"name"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type authResponse struct {
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// detailedResponse mirrors the validation/conflict envelope emitted by the
// centralized error handler; declared here for the swagger annotations.
type detailedResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
