package httpkit

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	perrs "showyourapp/internal/platform/errors"
)

// Param returns the named chi route param or a Validation error when absent
func Param(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if v == "" {
		return "", perrs.Newf(perrs.ErrorCodeValidation, "missing path param %s", name)
	}
	return v, nil
}

// ParamInt64 parses the named chi route param as int64
func ParamInt64(r *http.Request, name string) (int64, error) {
	v, err := Param(r, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, perrs.Newf(perrs.ErrorCodeValidation, "path param %s must be an integer", name)
	}
	return n, nil
}

// Query returns the named query value or def when absent
func Query(r *http.Request, name, def string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return def
}

// QueryInt parses the named query value as int, falling back to def on
// absence and failing Validation on garbage
func QueryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, perrs.Newf(perrs.ErrorCodeValidation, "query param %s must be an integer", name)
	}
	return n, nil
}

// QueryInt64 parses the named query value as int64 with the same contract as QueryInt
func QueryInt64(r *http.Request, name string, def int64) (int64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, perrs.Newf(perrs.ErrorCodeValidation, "query param %s must be an integer", name)
	}
	return n, nil
}

// QueryInt64s parses every occurrence of a repeated query param as int64
func QueryInt64s(r *http.Request, name string) ([]int64, error) {
	vals := r.URL.Query()[name]
	if len(vals) == 0 {
		return nil, nil
	}
	out := make([]int64, 0, len(vals))
	for _, v := range vals {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, perrs.Newf(perrs.ErrorCodeValidation, "query param %s must be an integer", name)
		}
		out = append(out, n)
	}
	return out, nil
}

// QueryBool parses the named query value as bool, absent -> def
func QueryBool(r *http.Request, name string, def bool) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, perrs.Newf(perrs.ErrorCodeValidation, "query param %s must be a boolean", name)
	}
	return b, nil
}
