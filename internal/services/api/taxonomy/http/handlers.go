// Package http provides http transport for taxonomy
package http

import (
	stdhttp "net/http"

	"showyourapp/internal/modkit/httpkit"
	"showyourapp/internal/services/api/taxonomy/domain"
	svc "showyourapp/internal/services/api/taxonomy/service"
)

// Register mounts taxonomy endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/tools", h.listTools)
	httpkit.Get(r, "/tags", h.listTags)
	httpkit.PostJSON[domain.CreateInput](r, "/tools", h.createTool)
	httpkit.PostJSON[domain.CreateInput](r, "/tags", h.createTag)
	httpkit.Delete(r, "/tools/{id}", h.deleteTool)
	httpkit.Delete(r, "/tags/{id}", h.deleteTag)
}

type handlers struct{ svc svc.Service }

// @Summary List available tools
// @Tags Taxonomy
// @Produce json
// @Success 200 {array} domain.Tool "ok"
// @Router /taxonomy/tools [get]
func (h *handlers) listTools(r *stdhttp.Request) (any, error) {
	return h.svc.ListTools(r.Context())
}

// @Summary List available tags
// @Tags Taxonomy
// @Produce json
// @Success 200 {array} domain.Tag "ok"
// @Router /taxonomy/tags [get]
func (h *handlers) listTags(r *stdhttp.Request) (any, error) {
	return h.svc.ListTags(r.Context())
}

// @Summary Create a tool (admin)
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Tool"
// @Success 200 {object} domain.Tool "ok"
// @Router /taxonomy/tools [post]
func (h *handlers) createTool(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	uid, err := httpkit.UserID64(r)
	if err != nil {
		return nil, err
	}
	return h.svc.CreateTool(r.Context(), uid, in)
}

// @Summary Create a tag (admin)
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Tag"
// @Success 200 {object} domain.Tag "ok"
// @Router /taxonomy/tags [post]
func (h *handlers) createTag(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	uid, err := httpkit.UserID64(r)
	if err != nil {
		return nil, err
	}
	return h.svc.CreateTag(r.Context(), uid, in)
}

// @Summary Delete a tool (admin)
// @Tags Taxonomy
// @Produce json
// @Param id path int true "Tool id"
// @Success 200 {object} any "ok"
// @Router /taxonomy/tools/{id} [delete]
func (h *handlers) deleteTool(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserID64(r)
	if err != nil {
		return nil, err
	}
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return nil, h.svc.DeleteTool(r.Context(), uid, id)
}

// @Summary Delete a tag (admin)
// @Tags Taxonomy
// @Produce json
// @Param id path int true "Tag id"
// @Success 200 {object} any "ok"
// @Router /taxonomy/tags/{id} [delete]
func (h *handlers) deleteTag(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserID64(r)
	if err != nil {
		return nil, err
	}
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return nil, h.svc.DeleteTag(r.Context(), uid, id)
}
