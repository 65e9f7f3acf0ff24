// Package urlnorm canonicalizes app URLs for duplicate matching
// Pipeline order
// 1 Trim surrounding whitespace
// 2 Lowercase the whole input
// 3 Assume https when no scheme so host and path split correctly
// 4 Strip a leading www. from the host only
// 5 Strip trailing slashes from the path
// 6 Recompose host + path with the query kept and scheme and fragment dropped
package urlnorm

import (
	"net/url"
	"strings"
)

// Normalize returns the canonical form of raw.
// Empty input stays empty so callers can treat it as absent.
// Parse failures degrade to best-effort string cleanup, never an error
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	probe := s
	if !strings.Contains(probe, "://") {
		probe = "https://" + probe
	}

	u, err := url.Parse(probe)
	if err != nil || u.Host == "" {
		return fallback(s)
	}

	host := strings.TrimPrefix(u.Host, "www.")
	path := strings.TrimRight(u.Path, "/")

	out := host + path
	if u.RawQuery != "" {
		out += "?" + u.RawQuery
	}
	return out
}

// fallback cleans inputs url.Parse refuses, mirroring the main pipeline
func fallback(s string) string {
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	s = strings.TrimPrefix(s, "www.")
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		return strings.TrimRight(s[:i], "/") + s[i:]
	}
	return strings.TrimRight(s, "/")
}
