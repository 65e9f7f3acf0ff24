// Package http provides http transport for social actions
package http

import (
	stdhttp "net/http"

	"showyourapp/internal/modkit/httpkit"
	"showyourapp/internal/services/api/social/domain"
	svc "showyourapp/internal/services/api/social/service"
)

// Register mounts social endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Post(r, "/apps/{id}/like", h.like)
	httpkit.Delete(r, "/apps/{id}/like", h.unlike)

	httpkit.Get(r, "/apps/{id}/comments", h.listComments)
	httpkit.PostJSON[domain.CommentInput](r, "/apps/{id}/comments", h.createComment)
	httpkit.PatchJSON[domain.CommentInput](r, "/comments/{id}", h.editComment)
	httpkit.Delete(r, "/comments/{id}", h.deleteComment)

	httpkit.PostJSON[domain.VoteInput](r, "/comments/{id}/vote", h.voteComment)
	httpkit.Delete(r, "/comments/{id}/vote", h.unvoteComment)

	httpkit.Post(r, "/users/{id}/follow", h.follow)
	httpkit.Delete(r, "/users/{id}/follow", h.unfollow)

	httpkit.Get(r, "/apps/{id}/reviews", h.listReviews)
	httpkit.PostJSON[domain.ReviewInput](r, "/apps/{id}/reviews", h.createReview)
}

type handlers struct{ svc svc.Service }

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

// @Summary Like an app
// @Tags Social
// @Produce json
// @Param id path int true "App id"
// @Success 200 {object} any "ok"
// @Router /social/apps/{id}/like [post]
func (h *handlers) like(r *stdhttp.Request) (any, error) {
	appID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.Like(r.Context(), appID, uid)
}

// @Summary Remove a like
// @Tags Social
// @Produce json
// @Param id path int true "App id"
// @Success 200 {object} any "ok"
// @Router /social/apps/{id}/like [delete]
func (h *handlers) unlike(r *stdhttp.Request) (any, error) {
	appID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.Unlike(r.Context(), appID, uid)
}

// @Summary List an app's comments oldest first
// @Tags Social
// @Produce json
// @Param id path int true "App id"
// @Success 200 {array} domain.Comment "ok"
// @Router /social/apps/{id}/comments [get]
func (h *handlers) listComments(r *stdhttp.Request) (any, error) {
	appID, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.ListComments(r.Context(), appID)
}

// @Summary Comment on an app
// @Tags Social
// @Accept json
// @Produce json
// @Param id path int true "App id"
// @Param payload body domain.CommentInput true "Comment"
// @Success 200 {object} domain.Comment "ok"
// @Router /social/apps/{id}/comments [post]
func (h *handlers) createComment(r *stdhttp.Request, in domain.CommentInput) (any, error) {
	appID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.CreateComment(r.Context(), appID, uid, in)
}

// @Summary Edit a comment (author only)
// @Tags Social
// @Accept json
// @Produce json
// @Param id path int true "Comment id"
// @Param payload body domain.CommentInput true "New body"
// @Success 200 {object} domain.Comment "ok"
// @Router /social/comments/{id} [patch]
func (h *handlers) editComment(r *stdhttp.Request, in domain.CommentInput) (any, error) {
	commentID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.EditComment(r.Context(), commentID, uid, in)
}

// @Summary Delete a comment (author only)
// @Tags Social
// @Produce json
// @Param id path int true "Comment id"
// @Success 200 {object} any "ok"
// @Router /social/comments/{id} [delete]
func (h *handlers) deleteComment(r *stdhttp.Request) (any, error) {
	commentID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.DeleteComment(r.Context(), commentID, uid)
}

// @Summary Vote on a comment
// @Tags Social
// @Accept json
// @Produce json
// @Param id path int true "Comment id"
// @Param payload body domain.VoteInput true "Vote"
// @Success 200 {object} any "ok"
// @Router /social/comments/{id}/vote [post]
func (h *handlers) voteComment(r *stdhttp.Request, in domain.VoteInput) (any, error) {
	commentID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.VoteComment(r.Context(), commentID, uid, in.Value)
}

// @Summary Remove a comment vote
// @Tags Social
// @Produce json
// @Param id path int true "Comment id"
// @Success 200 {object} any "ok"
// @Router /social/comments/{id}/vote [delete]
func (h *handlers) unvoteComment(r *stdhttp.Request) (any, error) {
	commentID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.UnvoteComment(r.Context(), commentID, uid)
}

// @Summary Follow a user
// @Tags Social
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} any "ok"
// @Router /social/users/{id}/follow [post]
func (h *handlers) follow(r *stdhttp.Request) (any, error) {
	followedID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.Follow(r.Context(), uid, followedID)
}

// @Summary Unfollow a user
// @Tags Social
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} any "ok"
// @Router /social/users/{id}/follow [delete]
func (h *handlers) unfollow(r *stdhttp.Request) (any, error) {
	followedID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.Unfollow(r.Context(), uid, followedID)
}

// @Summary List an app's reviews
// @Tags Social
// @Produce json
// @Param id path int true "App id"
// @Success 200 {array} domain.Review "ok"
// @Router /social/apps/{id}/reviews [get]
func (h *handlers) listReviews(r *stdhttp.Request) (any, error) {
	appID, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.ListReviews(r.Context(), appID)
}

// @Summary Review an app, one per user
// @Tags Social
// @Accept json
// @Produce json
// @Param id path int true "App id"
// @Param payload body domain.ReviewInput true "Review"
// @Success 200 {object} domain.Review "ok"
// @Router /social/apps/{id}/reviews [post]
func (h *handlers) createReview(r *stdhttp.Request, in domain.ReviewInput) (any, error) {
	appID, uid, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.CreateReview(r.Context(), appID, uid, in)
}
