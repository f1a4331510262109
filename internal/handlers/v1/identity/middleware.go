package identity

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/service"
)

type contextKey struct{}

// tokenVerifier is the interface for the token-verification service.
type tokenVerifier interface {
	VerifyToken(ctx context.Context, authorization string) (*service.Identity, error)
}

// Authenticator is the access-control gate in front of every protected
// operation: it verifies the Authorization header and places the resolved
// identity claim in the request context.
type Authenticator struct {
	IdentityService tokenVerifier
}

// NewAuthenticator creates a new Authenticator.
func NewAuthenticator(svc tokenVerifier) *Authenticator {
	return &Authenticator{IdentityService: svc}
}

// Middleware returns a per-operation Huma middleware that rejects requests
// without a valid bearer token.
func (a *Authenticator) Middleware(api huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		identity, err := a.IdentityService.VerifyToken(ctx.Context(), ctx.Header("Authorization"))
		if err != nil {
			// A persistence failure during the fresh subject lookup is not an
			// authentication verdict.
			if errors.Is(err, service.ErrInternal) {
				_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, service.ErrInternal.Error())
				return
			}
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, service.ErrAuthenticationFailed.Error())
			return
		}

		next(huma.WithValue(ctx, contextKey{}, identity))
	}
}

// FromContext returns the identity claim placed by the Middleware.
func FromContext(ctx context.Context) (*service.Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(*service.Identity)
	return identity, ok
}
