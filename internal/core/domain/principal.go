package domain

import "github.com/google/uuid"

// Well-known role names.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Principal is the authenticated identity resolved from a bearer token.
// It lives only for the duration of one request and is never persisted.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Roles  []string
}

// HasRole reports whether the principal carries the given role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal carries the ADMIN role.
func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}
