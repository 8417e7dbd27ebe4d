package auth

import (
	"context"
	"slices"
)

const (
	// PermCanMarkReturned lets staff see every loan and renew it.
	PermCanMarkReturned = "catalog.can_mark_returned"
	// PermManageCatalog grants the administration API.
	PermManageCatalog = "catalog.manage_catalog"
)

// AllPermissions is what a superuser receives at login.
var AllPermissions = []string{PermCanMarkReturned, PermManageCatalog}

// Principal is the caller of a request. The zero value is the anonymous user.
type Principal struct {
	UserID      int64    `json:"userId"`
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
}

func (p Principal) IsAuthenticated() bool {
	return p.UserID != 0
}

func (p Principal) HasPermission(perm string) bool {
	return p.IsAuthenticated() && slices.Contains(p.Permissions, perm)
}

type Decision uint8

const (
	Allowed Decision = iota
	Unauthenticated
	PermissionDenied
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case Unauthenticated:
		return "unauthenticated"
	case PermissionDenied:
		return "permission denied"
	default:
		return "unknown"
	}
}

// Authorize checks authentication first, then every required permission.
func Authorize(p Principal, perms ...string) Decision {
	if !p.IsAuthenticated() {
		return Unauthenticated
	}
	for _, perm := range perms {
		if !p.HasPermission(perm) {
			return PermissionDenied
		}
	}
	return Allowed
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) Principal {
	p, _ := ctx.Value(principalKey{}).(Principal)
	return p
}
