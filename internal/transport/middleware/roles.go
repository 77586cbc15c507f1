package middleware

import (
	"context"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
	"github.com/heartmarshall/coursehub-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden unless the context carries the
// admin role, and domain.ErrUnauthorized when there is no identity at all.
// Use in REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	role, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if domain.Role(role) != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// RequireEditor is like RequireAdmin but also admits editors; admins can do
// everything an editor can.
func RequireEditor(ctx context.Context) error {
	role, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	switch domain.Role(role) {
	case domain.RoleAdmin, domain.RoleEditor:
		return nil
	default:
		return domain.ErrForbidden
	}
}

// IsAdmin reports whether the context carries the admin role. Used where a
// capability toggles behavior instead of gating it.
func IsAdmin(ctx context.Context) bool {
	role, ok := ctxutil.RoleFromCtx(ctx)
	return ok && domain.Role(role) == domain.RoleAdmin
}
