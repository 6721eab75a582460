package middleware

import "context"

type ContextKey string

const (
	UserIDCtxKey   = ContextKey("user_id")
	UserRoleCtxKey = ContextKey("user_role")

	identityHolderKey = ContextKey("identity_holder")
)

// identityHolder lets outer middleware see who JWTAuth authenticated.
type identityHolder struct {
	userID string
}

func withIdentityHolder(ctx context.Context, h *identityHolder) context.Context {
	return context.WithValue(ctx, identityHolderKey, h)
}

// UserIDFromContext returns the authenticated user id, or "" when the request
// did not pass through JWTAuth.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(UserIDCtxKey).(string)
	return id
}

func UserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(UserRoleCtxKey).(string)
	return role
}

// WithUser stores an identity in ctx the same way JWTAuth does.
func WithUser(ctx context.Context, userID, role string) context.Context {
	if h, ok := ctx.Value(identityHolderKey).(*identityHolder); ok {
		h.userID = userID
	}
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, UserRoleCtxKey, role)
}
