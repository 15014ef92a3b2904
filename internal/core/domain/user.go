package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

const MaxNameLength = 50

// User models an account holder. PasswordHash is never serialized; every
// JSON view of a user is the sanitized projection.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
