// Package http provides http transport for users
package http

import (
	stdhttp "net/http"

	"showyourapp/internal/modkit/httpkit"
	svc "showyourapp/internal/services/api/users/service"
)

// Register mounts user endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/me", h.me)
	httpkit.Get(r, "/{id}", h.byID)
	httpkit.Get(r, "/by-username/{username}", h.byUsername)
}

type handlers struct{ svc svc.Service }

// @Summary Current user's profile
// @Tags Users
// @Produce json
// @Success 200 {object} domain.Profile "ok"
// @Router /users/me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserID64(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ProfileByID(r.Context(), uid)
}

// @Summary Profile by id
// @Tags Users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} domain.Profile "ok"
// @Router /users/{id} [get]
func (h *handlers) byID(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.ProfileByID(r.Context(), id)
}

// @Summary Profile by username
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} domain.Profile "ok"
// @Router /users/by-username/{username} [get]
func (h *handlers) byUsername(r *stdhttp.Request) (any, error) {
	name, err := httpkit.Param(r, "username")
	if err != nil {
		return nil, err
	}
	return h.svc.ProfileByUsername(r.Context(), name)
}
