// Package http provides http transport for app listings
package http

import (
	stdhttp "net/http"

	"showyourapp/internal/core/rank"
	"showyourapp/internal/modkit/httpkit"
	"showyourapp/internal/platform/net/middleware"
	"showyourapp/internal/services/api/apps/domain"
	svc "showyourapp/internal/services/api/apps/service"
)

// Register mounts app endpoints on the given router.
// Moderation routes go under strict bearer auth; everything else resolves
// identity optionally and enforces it per handler
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.feed)
	httpkit.Get(r, "/duplicates", h.duplicates)
	httpkit.Protected(r, auth, func(gr httpkit.Router) {
		httpkit.Get(gr, "/dead-reports/pending", h.pendingReports)
		httpkit.PutJSON[domain.ResolveInput](gr, "/dead-reports/{id}/resolve", h.resolveReport)
	})

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/{identifier}", h.get)
	httpkit.PatchJSON[domain.UpdateInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
	httpkit.Post(r, "/{id}/fork", h.fork)

	httpkit.PostJSON[domain.MediaInput](r, "/{id}/media", h.addMedia)
	httpkit.Delete(r, "/{id}/media/{media_id}", h.removeMedia)

	httpkit.PostJSON[domain.ReportInput](r, "/{id}/report-dead", h.reportDead)
}

type handlers struct{ svc svc.Service }

// @Summary Listing feed with filters and ranking
// @Tags Apps
// @Produce json
// @Param sort_by query string false "trending | top_rated | likes | newest"
// @Param tool_id query []int false "Tool ids (repeatable)"
// @Param tag_id query []int false "Tag ids (repeatable)"
// @Param tool query string false "Tool names, comma separated"
// @Param tag query string false "Tag names, comma separated"
// @Param search query string false "Free text over title, hook, description"
// @Param status query string false "Concept | WIP | Live"
// @Param creator_id query int false "Filter by author"
// @Param liked_by_user_id query int false "Filter to listings a user liked"
// @Param include_dead query bool false "Include dead listings"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size, capped at 100"
// @Success 200 {array} domain.App "ok"
// @Router /apps/ [get]
func (h *handlers) feed(r *stdhttp.Request) (any, error) {
	f := domain.FeedFilter{
		ToolNames: httpkit.Query(r, "tool", ""),
		TagNames:  httpkit.Query(r, "tag", ""),
		Search:    httpkit.Query(r, "search", ""),
		Sort:      rank.ParseSort(httpkit.Query(r, "sort_by", string(rank.Trending))),
	}

	var err error
	if f.ToolIDs, err = httpkit.QueryInt64s(r, "tool_id"); err != nil {
		return nil, err
	}
	if f.TagIDs, err = httpkit.QueryInt64s(r, "tag_id"); err != nil {
		return nil, err
	}
	if raw := httpkit.Query(r, "status", ""); raw != "" {
		if f.Status, err = domain.ParseStatus(raw); err != nil {
			return nil, err
		}
	}
	if f.CreatorID, err = httpkit.QueryInt64(r, "creator_id", 0); err != nil {
		return nil, err
	}
	if f.LikedBy, err = httpkit.QueryInt64(r, "liked_by_user_id", 0); err != nil {
		return nil, err
	}
	if f.IncludeDead, err = httpkit.QueryBool(r, "include_dead", false); err != nil {
		return nil, err
	}
	if f.Offset, err = httpkit.QueryInt(r, "skip", 0); err != nil {
		return nil, err
	}
	if f.Limit, err = httpkit.QueryInt(r, "limit", 0); err != nil {
		return nil, err
	}
	f.ViewerID, _ = httpkit.Viewer64(r)

	return h.svc.Feed(r.Context(), f)
}

// @Summary Search existing listings before submitting
// @Tags Apps
// @Produce json
// @Param url query string false "Candidate app URL"
// @Param title query string false "Candidate title"
// @Success 200 {array} domain.DuplicateHit "ok"
// @Router /apps/duplicates [get]
func (h *handlers) duplicates(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserID64(r)
	if err != nil {
		return nil, err
	}
	return h.svc.FindDuplicates(r.Context(), uid, domain.DuplicateQuery{
		URL:   httpkit.Query(r, "url", ""),
		Title: httpkit.Query(r, "title", ""),
	})
}

// @Summary Get one listing by id or slug
// @Tags Apps
// @Produce json
// @Param identifier path string true "Numeric id or slug"
// @Success 200 {object} domain.App "ok"
// @Router /apps/{identifier} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	identifier, err := httpkit.Param(r, "identifier")
	if err != nil {
		return nil, err
	}
	viewer, _ := httpkit.Viewer64(r)
	return h.svc.Get(r.Context(), identifier, viewer)
}

// @Summary Submit a listing
// @Tags Apps
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Listing"
// @Success 200 {object} domain.App "ok"
// @Router /apps/ [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	uid, err := httpkit.UserID64(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Create(r.Context(), uid, in)
}

// @Summary Edit a listing (owner only)
// @Tags Apps
// @Accept json
// @Produce json
// @Param id path int true "App id"
// @Param payload body domain.UpdateInput true "Partial edit"
// @Success 200 {object} domain.App "ok"
// @Router /apps/{id} [patch]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	appID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), appID, uid, in)
}

// @Summary Delete a listing (owner only)
// @Tags Apps
// @Produce json
// @Param id path int true "App id"
// @Success 200 {object} any "ok"
// @Router /apps/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	appID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.Delete(r.Context(), appID, uid)
}

// @Summary Fork a listing under your account
// @Tags Apps
// @Produce json
// @Param id path int true "App id"
// @Success 200 {object} domain.App "ok"
// @Router /apps/{id}/fork [post]
func (h *handlers) fork(r *stdhttp.Request) (any, error) {
	appID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Fork(r.Context(), appID, uid)
}

// @Summary Attach a media URL (owner only)
// @Tags Apps
// @Accept json
// @Produce json
// @Param id path int true "App id"
// @Param payload body domain.MediaInput true "Media"
// @Success 200 {object} domain.Media "ok"
// @Router /apps/{id}/media [post]
func (h *handlers) addMedia(r *stdhttp.Request, in domain.MediaInput) (any, error) {
	appID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.AddMedia(r.Context(), appID, uid, in)
}

// @Summary Detach a media object (owner only)
// @Tags Apps
// @Produce json
// @Param id path int true "App id"
// @Param media_id path int true "Media id"
// @Success 200 {object} any "ok"
// @Router /apps/{id}/media/{media_id} [delete]
func (h *handlers) removeMedia(r *stdhttp.Request) (any, error) {
	appID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	mediaID, err := httpkit.ParamInt64(r, "media_id")
	if err != nil {
		return nil, err
	}
	return nil, h.svc.RemoveMedia(r.Context(), appID, mediaID, uid)
}

// @Summary Report a listing as dead
// @Tags Apps
// @Accept json
// @Produce json
// @Param id path int true "App id"
// @Param payload body domain.ReportInput true "Reason"
// @Success 200 {object} domain.DeadReport "ok"
// @Router /apps/{id}/report-dead [post]
func (h *handlers) reportDead(r *stdhttp.Request, in domain.ReportInput) (any, error) {
	appID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ReportDead(r.Context(), appID, uid, in)
}

// @Summary Pending dead reports grouped per app (admin)
// @Tags Apps
// @Produce json
// @Success 200 {array} domain.DeadReport "ok"
// @Router /apps/dead-reports/pending [get]
func (h *handlers) pendingReports(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserID64(r)
	if err != nil {
		return nil, err
	}
	return h.svc.PendingDeadReports(r.Context(), uid)
}

// @Summary Resolve a dead report (admin)
// @Tags Apps
// @Accept json
// @Produce json
// @Param id path int true "Report id"
// @Param payload body domain.ResolveInput true "Verdict"
// @Success 200 {object} domain.DeadReport "ok"
// @Router /apps/dead-reports/{id}/resolve [put]
func (h *handlers) resolveReport(r *stdhttp.Request, in domain.ResolveInput) (any, error) {
	reportID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ResolveDeadReport(r.Context(), reportID, uid, in)
}

func ids(r *stdhttp.Request) (target, user int64, err error) {
	target, err = httpkit.ParamInt64(r, "id")
	if err != nil {
		return 0, 0, err
	}
	user, err = httpkit.UserID64(r)
	if err != nil {
		return 0, 0, err
	}
	return target, user, nil
}
