// auth/policy.go
package auth

import (
	"strings"

	"github.com/grootan/ems/api/model"
)

// Decision is the outcome of a policy evaluation.
type Decision int

const (
	Allow Decision = iota
	// DenyAnonymous means the resource requires authentication and no
	// principal is bound. Maps to 401.
	DenyAnonymous
	// DenyRole means the principal is authenticated but its role is not
	// in the rule's allowed set. Maps to 403.
	DenyRole
)

// Rule maps one (method, path prefix) pair to the set of roles allowed
// to reach it. Method "" matches any verb. Public rules need no
// principal at all.
type Rule struct {
	Method     string
	PathPrefix string
	Public     bool
	Roles      []model.Role
}

// Policy is the immutable authorization table, loaded once at startup
// and consulted on every request. Rules are evaluated in order, most
// specific first; the first match wins. With no match, authentication
// alone is the fallback requirement.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules []Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultPolicy is the service's fixed authorization matrix.
func DefaultPolicy() *Policy {
	anyRole := []model.Role{model.RoleAdmin, model.RoleHR, model.RoleManager, model.RoleEmployee}
	adminHR := []model.Role{model.RoleAdmin, model.RoleHR}

	return NewPolicy([]Rule{
		{PathPrefix: "/auth/login", Public: true},
		{PathPrefix: "/docs", Public: true},

		{Method: "GET", PathPrefix: "/api/departments", Roles: anyRole},
		{Method: "POST", PathPrefix: "/api/departments", Roles: adminHR},
		{Method: "PUT", PathPrefix: "/api/departments", Roles: adminHR},
		{Method: "DELETE", PathPrefix: "/api/departments", Roles: adminHR},

		{Method: "GET", PathPrefix: "/api/employees", Roles: anyRole},
		{Method: "POST", PathPrefix: "/api/employees", Roles: adminHR},
		{Method: "PUT", PathPrefix: "/api/employees", Roles: []model.Role{model.RoleAdmin, model.RoleHR, model.RoleManager}},
		{Method: "DELETE", PathPrefix: "/api/employees", Roles: adminHR},
	})
}

// Authorize is a pure function of (principal, method, path); identical
// inputs always yield identical decisions.
func (p *Policy) Authorize(principal *model.Principal, method, path string) Decision {
	for _, rule := range p.rules {
		if rule.Method != "" && rule.Method != method {
			continue
		}
		if !strings.HasPrefix(path, rule.PathPrefix) {
			continue
		}
		if rule.Public {
			return Allow
		}
		if principal == nil {
			return DenyAnonymous
		}
		for _, role := range rule.Roles {
			if role == principal.Role {
				return Allow
			}
		}
		return DenyRole
	}

	// No rule matched: deny unless authenticated, regardless of role.
	if principal == nil {
		return DenyAnonymous
	}
	return Allow
}
