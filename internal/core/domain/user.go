package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account that can authenticate and request lookups.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RolesCSV     string    `json:"-"` // e.g. "ADMIN,USER"
	CreatedAt    time.Time `json:"created_at"`
}

// Roles parses RolesCSV into a role set.
func (u *User) Roles() []string {
	if strings.TrimSpace(u.RolesCSV) == "" {
		return nil
	}
	var roles []string
	for _, r := range strings.Split(u.RolesCSV, ",") {
		r = strings.TrimSpace(r)
		if r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}
