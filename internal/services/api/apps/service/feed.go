package service

import (
	"context"
	"encoding/json"
	"strings"

	perr "showyourapp/internal/platform/errors"

	"showyourapp/internal/core/urlnorm"
	"showyourapp/internal/services/api/apps/domain"
	"showyourapp/internal/services/api/apps/repo"
)

// Feed returns one page of annotated listings
func (s *Svc) Feed(ctx context.Context, f domain.FeedFilter) ([]domain.App, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = feedDefaultLimit
	}
	if limit > feedMaxLimit {
		limit = feedMaxLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := s.Repo.Feed(ctx, repo.Filter{
		ToolIDs:     f.ToolIDs,
		ToolNames:   splitNames(f.ToolNames),
		TagIDs:      f.TagIDs,
		TagNames:    splitNames(f.TagNames),
		Search:      f.Search,
		Status:      string(f.Status),
		CreatorID:   f.CreatorID,
		LikedBy:     f.LikedBy,
		IncludeDead: f.IncludeDead,
		Sort:        f.Sort,
		Offset:      offset,
		Limit:       limit,
	})
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, s.Repo, rows, f.ViewerID)
}

// FindDuplicates looks for existing listings before a submission.
// The requester's own hits come back flagged so the agent can update
// instead of re-creating
func (s *Svc) FindDuplicates(ctx context.Context, requesterID int64, q domain.DuplicateQuery) ([]domain.DuplicateHit, error) {
	rawURL := strings.TrimSpace(q.URL)
	title := strings.TrimSpace(q.Title)
	if rawURL == "" && title == "" {
		return nil, perr.Newf(perr.ErrorCodeValidation, "provide a url or a title to search")
	}

	rows, err := s.Repo.SearchDuplicates(ctx, urlnorm.Normalize(rawURL), title, duplicateLimit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DuplicateHit, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.DuplicateHit{
			ID:        r.ID,
			Title:     r.Title,
			Slug:      r.Slug,
			Status:    domain.Status(r.Status),
			AppURL:    r.AppURL,
			CreatedAt: r.CreatedAt,
			Creator:   domain.Creator{ID: r.CreatorID, Username: r.CreatorName, Avatar: r.CreatorAvatar},
			IsMine:    r.CreatorID == requesterID,
		})
	}
	return out, nil
}

// annotate decorates one page of rows with counts, viewer state,
// tools, tags, media, and creators. Every aggregate is fetched once
// per page, never per row
func (s *Svc) annotate(ctx context.Context, r repo.Repo, rows []repo.RowApp, viewerID int64) ([]domain.App, error) {
	if len(rows) == 0 {
		return []domain.App{}, nil
	}

	ids := make([]int64, 0, len(rows))
	creators := make([]int64, 0, len(rows))
	seen := make(map[int64]bool, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
		if !seen[row.CreatorID] {
			seen[row.CreatorID] = true
			creators = append(creators, row.CreatorID)
		}
	}

	likes, err := r.LikeCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	comments, err := r.CommentCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	liked, err := r.LikedSet(ctx, ids, viewerID)
	if err != nil {
		return nil, err
	}
	tools, err := r.ToolsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	tags, err := r.TagsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	media, err := r.MediaFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	authors, err := r.CreatorsFor(ctx, creators)
	if err != nil {
		return nil, err
	}

	out := make([]domain.App, 0, len(rows))
	for _, row := range rows {
		app := toApp(row)
		app.LikesCount = likes[row.ID]
		app.CommentsCount = comments[row.ID]
		app.Liked = liked[row.ID]
		app.Tools = toRefs(tools[row.ID])
		app.Tags = toRefs(tags[row.ID])
		app.Media = toMedia(media[row.ID])
		if c, ok := authors[row.CreatorID]; ok {
			app.Creator = domain.Creator{ID: c.ID, Username: c.Username, Avatar: c.Avatar}
		}
		out = append(out, app)
	}
	return out, nil
}

func (s *Svc) annotateOne(ctx context.Context, r repo.Repo, row repo.RowApp, viewerID int64) (domain.App, error) {
	apps, err := s.annotate(ctx, r, []repo.RowApp{row}, viewerID)
	if err != nil {
		return domain.App{}, err
	}
	return apps[0], nil
}

func toApp(row repo.RowApp) domain.App {
	return domain.App{
		ID:             row.ID,
		CreatorID:      row.CreatorID,
		Title:          row.Title,
		Hook:           row.Hook,
		Description:    row.Description,
		ExtraSpecs:     json.RawMessage(row.ExtraSpecs),
		Status:         domain.Status(row.Status),
		AppURL:         row.AppURL,
		YoutubeURL:     row.YoutubeURL,
		AgentSubmitted: row.AgentSubmitted,
		OwnerListing:   row.OwnerListing,
		Dead:           row.Dead,
		ParentID:       row.ParentID,
		Slug:           row.Slug,
		CreatedAt:      row.CreatedAt,
		Tools:          []domain.Ref{},
		Tags:           []domain.Ref{},
		Media:          []domain.Media{},
	}
}

func toRefs(rows []repo.RowRef) []domain.Ref {
	out := make([]domain.Ref, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Ref{ID: r.ID, Name: r.Name})
	}
	return out
}

func toMedia(rows []repo.RowMedia) []domain.Media {
	out := make([]domain.Media, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Media{ID: m.ID, AppID: m.AppID, URL: m.URL, ObjectKey: m.ObjectKey})
	}
	return out
}

// splitNames parses a comma list, dropping blanks
func splitNames(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
