// Package httpkit provides tiny HTTP helpers and adapters
package httpkit

import (
	"context"
	"net/http"
	"strings"

	perrs "showyourapp/internal/platform/errors"
)

// TokenFunc parses a bearer token and returns the user id it belongs to.
// ctx is the request context so a resolver hitting the store honors cancellation
type TokenFunc func(ctx context.Context, token string) (userID string, err error)

// Port implements middleware.AuthPort by reading Authorization and delegating to a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a simple parser function
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{parse: fn}
}

// Parse extracts the user id from an Authorization Bearer token.
// It returns unauthorized when the header is missing, malformed, or the parser rejects the token
func (p *Port) Parse(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	// normalize whitespace around the whole header
	s := strings.TrimSpace(authz)
	if s == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	ls := strings.ToLower(s)
	const prefix = "bearer"
	if !strings.HasPrefix(ls, prefix) {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	// slice after "Bearer" (no trailing space required), then trim any spaces before token
	raw := strings.TrimSpace(s[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}

	if p.parse == nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}

	uid, err := p.parse(r.Context(), raw)
	if err != nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	return uid, nil
}
