package middleware

import (
	"net/http"

	pnet "showyourapp/internal/platform/net"
)

// AuthPort is a tiny seam the identity service implements
type AuthPort interface {
	// Parse returns a user id from the request or an error
	Parse(r *http.Request) (userID string, err error)
}

// Auth resolves the request identity through the port and stashes it on context.
// A nil port leaves requests anonymous
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithUser(r.Context(), uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthOptional is like Auth but lets unauthenticated requests through anonymously.
// Handlers that need identity still fail through httpkit.User
func AuthOptional(p AuthPort) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			if uid, err := p.Parse(r); err == nil && uid != "" {
				r = r.WithContext(pnet.WithUser(r.Context(), uid))
			}
			next.ServeHTTP(w, r)
		})
	}
}
