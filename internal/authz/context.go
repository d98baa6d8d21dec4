package authz

import (
	"github.com/labstack/echo/v4"
)

// Role identifies what a caller is allowed to do.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleStudio       Role = "studio"
	RolePhotographer Role = "photographer"
)

const contextKey = "authContext"

// AuthContext is the verified identity attached to every authenticated
// request. Handlers receive it explicitly instead of re-reading cookies or
// comparing raw emails.
type AuthContext struct {
	SubjectID string
	Email     string
	Role      Role
}

// IsAdmin reports whether the caller holds the admin role.
func (a AuthContext) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// WithIdentity stores the verified identity on the echo context.
func WithIdentity(c echo.Context, auth AuthContext) {
	c.Set(contextKey, auth)
}

// FromContext retrieves the verified identity, if any.
func FromContext(c echo.Context) (AuthContext, bool) {
	auth, ok := c.Get(contextKey).(AuthContext)
	if !ok || auth.SubjectID == "" {
		return AuthContext{}, false
	}
	return auth, true
}
