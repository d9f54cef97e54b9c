package repository

import (
	"strings"

	"sasyak-admin/internal/models"
)

// UserFilter narrows an already fetched list of users. Zero fields match
// everything.
type UserFilter struct {
	Q         string      // case-insensitive substring of name or email
	MatchRole bool        // also match Q against the role
	Role      models.Role // exact
	ManagerID *int64
}

func (f UserFilter) Apply(users []models.User) []models.User {
	q := strings.ToLower(f.Q)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.ManagerID != nil && (u.ManagerID == nil || *u.ManagerID != *f.ManagerID) {
			continue
		}
		if q != "" && !f.matches(u, q) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (f UserFilter) matches(u models.User, q string) bool {
	if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
		return true
	}
	return f.MatchRole && strings.Contains(strings.ToLower(string(u.Role)), q)
}
