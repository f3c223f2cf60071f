package model

import "fmt"

// Role is the fixed set of access roles known to the service.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// ParseRole converts a stored or transmitted role string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// Principal is the authenticated identity attached to a request. It is
// rebuilt per request from token claims plus a live account lookup and
// is never persisted on its own.
type Principal struct {
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Enabled bool   `json:"enabled"`
}
