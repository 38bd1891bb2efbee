package httpapi

import "net/http"

// RoleProvider is the external identity source. The status workflow itself
// carries no authorization logic; this gate is the UI entry point check.
type RoleProvider interface {
	IsAdmin(r *http.Request) bool
}

// TokenRoleProvider grants the admin role to requests carrying the
// configured token. Stands in for a real identity provider.
type TokenRoleProvider struct {
	Token string
}

func (p TokenRoleProvider) IsAdmin(r *http.Request) bool {
	return p.Token != "" && r.Header.Get("X-Admin-Token") == p.Token
}

func RequireAdmin(roles RoleProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !roles.IsAdmin(r) {
				http.Error(w, "Admin access required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
