package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyAdmin       = errors.New("user is already an admin")
	ErrItemNotFound       = errors.New("item not found")
	ErrInvalidID          = errors.New("invalid id format")
	ErrForbidden          = errors.New("access forbidden")
)

// FieldError describes a single schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates schema violations for one entity. It
// satisfies error so services can return it directly and the API layer
// can detect it with errors.As.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, fe := range ve {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// ValidID reports whether id is a well-formed 24-character hex object id.
// Kept in the domain so services can reject malformed ids without
// depending on the storage driver.
func ValidID(id string) bool {
	if len(id) != 24 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
