// Package service contains the listing workflows: feed, duplicate
// search, submission, forking, media, and dead-report moderation
package service

import (
	"context"
	"strings"

	perr "showyourapp/internal/platform/errors"

	"showyourapp/internal/core/slug"
	"showyourapp/internal/modkit/repokit"
	"showyourapp/internal/services/api/apps/domain"
	"showyourapp/internal/services/api/apps/repo"

	"github.com/google/uuid"
)

const (
	feedDefaultLimit = 20
	feedMaxLimit     = 100
	duplicateLimit   = 20

	// bounded retry for the slug unique constraint; the randomized
	// fallback makes exhaustion practically unreachable
	maxSlugRetries = 3
)

// Service defines the service contract for apps
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	admins domain.AdminGate
}

// New creates a new apps service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], admins domain.AdminGate) *Svc {
	if db == nil {
		panic("apps.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("apps.Service requires a non nil Repo binder")
	}
	if admins == nil {
		panic("apps.Service requires a non nil AdminGate")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, admins: admins}
}

// Get returns one listing by numeric id or slug
func (s *Svc) Get(ctx context.Context, identifier string, viewerID int64) (domain.App, error) {
	var (
		row repo.RowApp
		err error
	)
	if id, numeric := parseID(identifier); numeric {
		row, err = s.Repo.ByID(ctx, id)
	} else {
		row, err = s.Repo.BySlug(ctx, identifier)
	}
	if err != nil {
		return domain.App{}, err
	}
	return s.annotateOne(ctx, s.Repo, row, viewerID)
}

// Create validates and inserts a listing. The slug comes from the
// title; collisions are resolved by sequential probing, and losing the
// insert race falls back to a random suffix before giving up
func (s *Svc) Create(ctx context.Context, creatorID int64, in domain.CreateInput) (domain.App, error) {
	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return domain.App{}, err
	}
	if status == domain.StatusLive && strings.TrimSpace(in.AppURL) == "" {
		return domain.App{}, perr.Newf(perr.ErrorCodeValidation, "live listings need an app_url")
	}

	base := slug.Make(in.Title)
	var out domain.App
	err = repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		row, err := s.insertWithSlug(ctx, r, base, func(sl string) repo.InsertApp {
			return repo.InsertApp{
				CreatorID:      creatorID,
				Title:          in.Title,
				Hook:           in.Hook,
				Description:    in.Description,
				ExtraSpecs:     in.ExtraSpecs,
				Status:         string(status),
				AppURL:         in.AppURL,
				YoutubeURL:     in.YoutubeURL,
				AgentSubmitted: in.AgentSubmitted,
				OwnerListing:   in.OwnerListing,
				ParentID:       in.ParentID,
				Slug:           sl,
			}
		})
		if err != nil {
			return err
		}
		if len(in.ToolIDs) > 0 {
			if err := r.SetTools(ctx, row.ID, in.ToolIDs); err != nil {
				return err
			}
		}
		if len(in.TagIDs) > 0 {
			if err := r.SetTags(ctx, row.ID, in.TagIDs); err != nil {
				return err
			}
		}
		out, err = s.annotateOne(ctx, r, row, creatorID)
		return err
	})
	return out, err
}

// insertWithSlug probes sequential candidates first, then retries the
// insert with random suffixes when another writer claims the slug
func (s *Svc) insertWithSlug(ctx context.Context, r repo.Repo, base string, build func(string) repo.InsertApp) (repo.RowApp, error) {
	candidate, err := s.freeSlug(ctx, r, base)
	if err != nil {
		return repo.RowApp{}, err
	}
	for attempt := 0; ; attempt++ {
		row, err := r.Insert(ctx, build(candidate))
		if err == nil {
			return row, nil
		}
		if !perr.IsCode(err, perr.ErrorCodeConflict) && !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			return repo.RowApp{}, err
		}
		if attempt >= maxSlugRetries {
			return repo.RowApp{}, perr.Conflictf("could not allocate a unique slug for %q", base)
		}
		candidate = slug.Randomized(base)
	}
}

// freeSlug resolves the first untaken sequential candidate
func (s *Svc) freeSlug(ctx context.Context, r repo.Repo, base string) (string, error) {
	var probeErr error
	out := slug.Sequential(base, func(candidate string) bool {
		if probeErr != nil {
			return false
		}
		taken, err := r.SlugExists(ctx, candidate)
		if err != nil {
			probeErr = err
			return false
		}
		return taken
	})
	if probeErr != nil {
		return "", probeErr
	}
	return out, nil
}

// Update applies a partial edit; owner only. A title change regenerates
// the slug with the sequential strategy, skipping the listing's own
func (s *Svc) Update(ctx context.Context, appID, userID int64, in domain.UpdateInput) (domain.App, error) {
	var out domain.App
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		cur, err := r.ByID(ctx, appID)
		if err != nil {
			return err
		}
		if cur.CreatorID != userID {
			return perr.Forbiddenf("not your listing")
		}

		set := repo.UpdateFields{
			Title:       in.Title,
			Hook:        in.Hook,
			Description: in.Description,
			AppURL:      in.AppURL,
			YoutubeURL:  in.YoutubeURL,
			Dead:        in.Dead,
		}
		if in.ExtraSpecs != nil {
			raw := []byte(*in.ExtraSpecs)
			set.ExtraSpecs = &raw
		}
		if in.Status != nil {
			status, err := domain.ParseStatus(*in.Status)
			if err != nil {
				return err
			}
			str := string(status)
			set.Status = &str
		}
		if in.Title != nil && *in.Title != cur.Title {
			base := slug.Make(*in.Title)
			var probeErr error
			sl := slug.Sequential(base, func(candidate string) bool {
				if probeErr != nil {
					return false
				}
				if candidate == cur.Slug {
					return false
				}
				taken, err := r.SlugExists(ctx, candidate)
				if err != nil {
					probeErr = err
					return false
				}
				return taken
			})
			if probeErr != nil {
				return probeErr
			}
			set.Slug = &sl
		}

		row, err := r.Update(ctx, appID, set)
		if err != nil {
			return err
		}
		if in.ToolIDs != nil {
			if err := r.SetTools(ctx, appID, *in.ToolIDs); err != nil {
				return err
			}
		}
		if in.TagIDs != nil {
			if err := r.SetTags(ctx, appID, *in.TagIDs); err != nil {
				return err
			}
		}
		out, err = s.annotateOne(ctx, r, row, userID)
		return err
	})
	return out, err
}

// Delete removes a listing; owner only
func (s *Svc) Delete(ctx context.Context, appID, userID int64) error {
	cur, err := s.Repo.ByID(ctx, appID)
	if err != nil {
		return err
	}
	if cur.CreatorID != userID {
		return perr.Forbiddenf("not your listing")
	}
	return s.Repo.Delete(ctx, appID)
}

// Fork copies a listing's content, tools, and tags under a new owner.
// The fork starts over as a Concept with a randomized slug
func (s *Svc) Fork(ctx context.Context, appID, userID int64) (domain.App, error) {
	var out domain.App
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		parent, err := r.ByID(ctx, appID)
		if err != nil {
			return err
		}

		base := slug.Make(parent.Title + "-fork")
		candidate := slug.Randomized(base)
		var row repo.RowApp
		for attempt := 0; ; attempt++ {
			row, err = r.Insert(ctx, repo.InsertApp{
				CreatorID:   userID,
				Title:       parent.Title,
				Hook:        parent.Hook,
				Description: parent.Description,
				ExtraSpecs:  parent.ExtraSpecs,
				Status:      string(domain.StatusConcept),
				ParentID:    &parent.ID,
				Slug:        candidate,
			})
			if err == nil {
				break
			}
			if !perr.IsCode(err, perr.ErrorCodeConflict) && !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
				return err
			}
			if attempt >= maxSlugRetries {
				return perr.Conflictf("could not allocate a unique slug for %q", base)
			}
			candidate = slug.Randomized(base)
		}

		tools, err := r.ToolsFor(ctx, []int64{parent.ID})
		if err != nil {
			return err
		}
		if ids := refIDs(tools[parent.ID]); len(ids) > 0 {
			if err := r.SetTools(ctx, row.ID, ids); err != nil {
				return err
			}
		}
		tags, err := r.TagsFor(ctx, []int64{parent.ID})
		if err != nil {
			return err
		}
		if ids := refIDs(tags[parent.ID]); len(ids) > 0 {
			if err := r.SetTags(ctx, row.ID, ids); err != nil {
				return err
			}
		}

		out, err = s.annotateOne(ctx, r, row, userID)
		return err
	})
	return out, err
}

// AddMedia attaches a media URL to a listing; owner only
func (s *Svc) AddMedia(ctx context.Context, appID, userID int64, in domain.MediaInput) (domain.Media, error) {
	cur, err := s.Repo.ByID(ctx, appID)
	if err != nil {
		return domain.Media{}, err
	}
	if cur.CreatorID != userID {
		return domain.Media{}, perr.Forbiddenf("not your listing")
	}
	row, err := s.Repo.InsertMedia(ctx, appID, in.URL, uuid.NewString())
	if err != nil {
		return domain.Media{}, err
	}
	return domain.Media{ID: row.ID, AppID: row.AppID, URL: row.URL, ObjectKey: row.ObjectKey}, nil
}

// RemoveMedia detaches a media object; owner only
func (s *Svc) RemoveMedia(ctx context.Context, appID, mediaID, userID int64) error {
	cur, err := s.Repo.ByID(ctx, appID)
	if err != nil {
		return err
	}
	if cur.CreatorID != userID {
		return perr.Forbiddenf("not your listing")
	}
	return s.Repo.DeleteMedia(ctx, appID, mediaID)
}

func (s *Svc) requireAdmin(ctx context.Context, userID int64) error {
	ok, err := s.admins.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return perr.Forbiddenf("admin only")
	}
	return nil
}

func refIDs(refs []repo.RowRef) []int64 {
	out := make([]int64, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref.ID)
	}
	return out
}

func parseID(identifier string) (int64, bool) {
	if identifier == "" {
		return 0, false
	}
	var n int64
	for _, r := range identifier {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int64(r-'0')
	}
	return n, true
}
