// Package identity is the narrow boundary to the external session provider.
// The settlement core itself is identity-agnostic; the only thing the rest of
// the service ever asks is "which account is acting on this request".
package identity

import (
	"context"
	"net/http"
)

// Provider resolves the acting account for an incoming request. The second
// return value is false when no session is active.
type Provider interface {
	CurrentAccountID(r *http.Request) (string, bool)
}

// HeaderProvider resolves the account from a request header set by the
// upstream auth proxy, which has already verified the session.
type HeaderProvider struct {
	Header string
}

// DefaultHeader is the header the auth proxy sets after session verification.
const DefaultHeader = "X-Account-Id"

// NewHeaderProvider creates a HeaderProvider; an empty header name selects DefaultHeader.
func NewHeaderProvider(header string) *HeaderProvider {
	if header == "" {
		header = DefaultHeader
	}
	return &HeaderProvider{Header: header}
}

// Make sure we conform to the interface
var _ Provider = (*HeaderProvider)(nil)

// CurrentAccountID returns the account ID from the configured header.
func (p *HeaderProvider) CurrentAccountID(r *http.Request) (string, bool) {
	id := r.Header.Get(p.Header)
	return id, id != ""
}

type contextKey struct{}

// WithAccountID returns a context carrying the acting account ID.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, contextKey{}, accountID)
}

// Middleware resolves the acting account once per request and stores it on
// the request context. Requests with no active session pass through; handlers
// that require a session reject them via FromContext.
func Middleware(provider Provider) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if accountID, ok := provider.CurrentAccountID(r); ok {
				r = r.WithContext(WithAccountID(r.Context(), accountID))
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// FromContext returns the acting account ID stored by Middleware.
func FromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(contextKey{}).(string)
	return accountID, ok && accountID != ""
}
