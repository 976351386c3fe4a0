// Package auth carries the per-request session identity through the
// request context. The identity is derived once per request by the session
// middleware and read by resolvers and services.
package auth

import (
	"context"
	"errors"

	user "library-backend/internal/domains/user"
)

// ErrNotAuthenticated is returned by Require when no identity is attached
// to the request context.
var ErrNotAuthenticated = errors.New("not authenticated")

type contextKey struct{}

var userKey contextKey

// WithUser attaches the resolved user to the context.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// CurrentUser returns the user resolved for this request, if any.
func CurrentUser(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userKey).(*user.User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}

// Require is the authorization gate for mutations. It must be called before
// any store write: no identity means the operation fails with zero side effects.
func Require(ctx context.Context) (*user.User, error) {
	u, ok := CurrentUser(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return u, nil
}
