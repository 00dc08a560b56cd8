package common

import (
	"context"

	"github.com/stkhm/form-review-services/api/internal/token"
)

type contextKey string

const authClaimsContextKey contextKey = "authClaims"

// ContextWithClaims stores the verified token claims into context.
func ContextWithClaims(ctx context.Context, claims token.Claims) context.Context {
	return context.WithValue(ctx, authClaimsContextKey, claims)
}

// ClaimsFromContext extracts the verified token claims from context.
func ClaimsFromContext(ctx context.Context) (token.Claims, bool) {
	claims, ok := ctx.Value(authClaimsContextKey).(token.Claims)
	return claims, ok
}
