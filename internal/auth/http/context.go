// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"context"

	authDomain "github.com/ativoshub/ativos/internal/auth/domain"
)

// claimsKey is a context key type for storing verified token claims.
type claimsKey struct{}

// WithClaims stores verified token claims in the context.
// This is called by the authentication middleware after successful token verification.
func WithClaims(ctx context.Context, claims *authDomain.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims retrieves verified token claims from the context.
// Returns (claims, true) if claims are present, or (nil, false) if no claims were set.
func GetClaims(ctx context.Context) (*authDomain.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*authDomain.TokenClaims)
	return claims, ok
}
