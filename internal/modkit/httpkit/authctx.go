package httpkit

import (
	"net/http"
	"strconv"
	"strings"

	perrs "showyourapp/internal/platform/errors"
	pnet "showyourapp/internal/platform/net"
)

// User returns the authenticated user id from the request context
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return uid, nil
}

// UserID64 returns the authenticated user id parsed as int64.
// Identity values are decimal database ids; anything else means the
// auth port misbehaved and surfaces as unauthorized
func UserID64(r *http.Request) (int64, error) {
	uid, err := User(r)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(uid, 10, 64)
	if err != nil {
		return 0, perrs.Unauthorizedf("malformed identity")
	}
	return n, nil
}

// Viewer64 returns the requester's id when one is present.
// Routes behind optional auth use this to annotate without requiring identity
func Viewer64(r *http.Request) (int64, bool) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(uid, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MustUser returns the authenticated user id or panics
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}

// JWT returns the raw bearer token from the Authorization header
func JWT(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if strings.TrimSpace(authz) == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	// case-insensitive Bearer prefix (don't trim the whole header first)
	const prefix = "bearer "
	if len(authz) < len(prefix) || strings.ToLower(authz[:len(prefix)]) != prefix {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}

// MustJWT returns the raw bearer token or panics
// only use on routes protected by the auth middleware
func MustJWT(r *http.Request) string {
	raw, err := JWT(r)
	if err != nil {
		panic(err)
	}
	return raw
}
