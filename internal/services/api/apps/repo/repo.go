// Package repo provides postgres access for app listings
package repo

import (
	"context"
	"errors"
	"strconv"
	"strings"

	perr "showyourapp/internal/platform/errors"

	"showyourapp/internal/modkit/repokit"

	"github.com/jackc/pgx/v5"
)

// Repo defines the repository contract for app listings
type Repo interface {
	Feed(ctx context.Context, f Filter) ([]RowApp, error)
	SearchDuplicates(ctx context.Context, normURL, title string, limit int) ([]RowDup, error)

	ByID(ctx context.Context, id int64) (RowApp, error)
	BySlug(ctx context.Context, slug string) (RowApp, error)
	SlugExists(ctx context.Context, slug string) (bool, error)

	Insert(ctx context.Context, in InsertApp) (RowApp, error)
	Update(ctx context.Context, appID int64, set UpdateFields) (RowApp, error)
	Delete(ctx context.Context, appID int64) error
	SetTools(ctx context.Context, appID int64, toolIDs []int64) error
	SetTags(ctx context.Context, appID int64, tagIDs []int64) error

	LikeCounts(ctx context.Context, appIDs []int64) (map[int64]int, error)
	CommentCounts(ctx context.Context, appIDs []int64) (map[int64]int, error)
	LikedSet(ctx context.Context, appIDs []int64, viewerID int64) (map[int64]bool, error)
	ToolsFor(ctx context.Context, appIDs []int64) (map[int64][]RowRef, error)
	TagsFor(ctx context.Context, appIDs []int64) (map[int64][]RowRef, error)
	MediaFor(ctx context.Context, appIDs []int64) (map[int64][]RowMedia, error)
	CreatorsFor(ctx context.Context, userIDs []int64) (map[int64]RowCreator, error)

	InsertMedia(ctx context.Context, appID int64, url, objectKey string) (RowMedia, error)
	DeleteMedia(ctx context.Context, appID, mediaID int64) error

	InsertDeadReport(ctx context.Context, appID, reporterID int64, reason string) (RowReport, error)
	PendingReports(ctx context.Context) ([]RowReport, error)
	ReportByID(ctx context.Context, reportID int64) (RowReport, error)
	ResolvePending(ctx context.Context, appID int64, status string) error
	MarkDead(ctx context.Context, appID int64) error
}

// RowApp is a listing row without annotations
type RowApp struct {
	ID             int64
	CreatorID      int64
	Title          string
	Hook           string
	Description    string
	ExtraSpecs     []byte
	Status         string
	AppURL         string
	YoutubeURL     string
	AgentSubmitted bool
	OwnerListing   bool
	Dead           bool
	ParentID       *int64
	Slug           string
	CreatedAt      string
}

// RowDup is a duplicate-search hit joined with its creator
type RowDup struct {
	ID            int64
	Title         string
	Slug          string
	Status        string
	AppURL        string
	CreatedAt     string
	CreatorID     int64
	CreatorName   string
	CreatorAvatar string
}

// RowRef is a tool or tag attached to a listing
type RowRef struct {
	ID   int64
	Name string
}

// RowMedia is one media row
type RowMedia struct {
	ID        int64
	AppID     int64
	URL       string
	ObjectKey string
}

// RowCreator is the listing author summary
type RowCreator struct {
	ID       int64
	Username string
	Avatar   string
}

// RowReport is a dead report row
type RowReport struct {
	ID          int64
	AppID       int64
	ReporterID  int64
	Reason      string
	Status      string
	CreatedAt   string
	ResolvedAt  string
	AppTitle    string
	ReportCount int
}

// InsertApp carries a new listing row
type InsertApp struct {
	CreatorID      int64
	Title          string
	Hook           string
	Description    string
	ExtraSpecs     []byte
	Status         string
	AppURL         string
	YoutubeURL     string
	AgentSubmitted bool
	OwnerListing   bool
	ParentID       *int64
	Slug           string
}

// UpdateFields carries a partial listing edit; nil fields stay untouched
type UpdateFields struct {
	Title       *string
	Hook        *string
	Description *string
	ExtraSpecs  *[]byte
	Status      *string
	AppURL      *string
	YoutubeURL  *string
	Dead        *bool
	Slug        *string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const appCols = `
a.id, a.creator_id, a.title, coalesce(a.hook, ''), coalesce(a.description, ''),
a.extra_specs, a.status, coalesce(a.app_url, ''), coalesce(a.youtube_url, ''),
a.is_agent_submitted, a.is_owner, a.is_dead, a.parent_app_id, a.slug, a.created_at::text
`

func scanApp(row interface{ Scan(...any) error }) (RowApp, error) {
	var a RowApp
	err := row.Scan(
		&a.ID, &a.CreatorID, &a.Title, &a.Hook, &a.Description,
		&a.ExtraSpecs, &a.Status, &a.AppURL, &a.YoutubeURL,
		&a.AgentSubmitted, &a.OwnerListing, &a.Dead, &a.ParentID, &a.Slug, &a.CreatedAt,
	)
	return a, err
}

func (r *queries) ByID(ctx context.Context, id int64) (RowApp, error) {
	sql := `select ` + appCols + ` from apps a where a.id = $1`
	a, err := scanApp(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowApp{}, perr.NotFoundf("app %d not found", id)
		}
		return RowApp{}, perr.FromPostgres(err, "app by id")
	}
	return a, nil
}

func (r *queries) BySlug(ctx context.Context, slug string) (RowApp, error) {
	sql := `select ` + appCols + ` from apps a where a.slug = $1`
	a, err := scanApp(r.q.QueryRow(ctx, sql, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowApp{}, perr.NotFoundf("app %q not found", slug)
		}
		return RowApp{}, perr.FromPostgres(err, "app by slug")
	}
	return a, nil
}

func (r *queries) SlugExists(ctx context.Context, slug string) (bool, error) {
	const sql = `select exists (select 1 from apps where slug = $1)`
	var ok bool
	if err := r.q.QueryRow(ctx, sql, slug).Scan(&ok); err != nil {
		return false, perr.FromPostgres(err, "slug exists")
	}
	return ok, nil
}

func (r *queries) Insert(ctx context.Context, in InsertApp) (RowApp, error) {
	sql := `
with ins as (
	insert into apps (
		creator_id, title, hook, description, extra_specs, status,
		app_url, youtube_url, is_agent_submitted, is_owner, parent_app_id, slug
	)
	values ($1, $2, nullif($3, ''), nullif($4, ''), $5, $6, nullif($7, ''), nullif($8, ''), $9, $10, $11, $12)
	returning *
)
select ` + appCols + ` from ins a`
	a, err := scanApp(r.q.QueryRow(ctx, sql,
		in.CreatorID, in.Title, in.Hook, in.Description, in.ExtraSpecs, in.Status,
		in.AppURL, in.YoutubeURL, in.AgentSubmitted, in.OwnerListing, in.ParentID, in.Slug,
	))
	if err != nil {
		return RowApp{}, perr.FromPostgres(err, "insert app")
	}
	return a, nil
}

func (r *queries) Update(ctx context.Context, appID int64, set UpdateFields) (RowApp, error) {
	var args []any
	arg := func(v any) string { args = append(args, v); return "$" + strconv.Itoa(len(args)) }

	var sets []string
	add := func(col string, v any) { sets = append(sets, col+" = "+arg(v)) }
	if set.Title != nil {
		add("title", *set.Title)
	}
	if set.Hook != nil {
		add("hook", *set.Hook)
	}
	if set.Description != nil {
		add("description", *set.Description)
	}
	if set.ExtraSpecs != nil {
		add("extra_specs", *set.ExtraSpecs)
	}
	if set.Status != nil {
		add("status", *set.Status)
	}
	if set.AppURL != nil {
		add("app_url", *set.AppURL)
	}
	if set.YoutubeURL != nil {
		add("youtube_url", *set.YoutubeURL)
	}
	if set.Dead != nil {
		add("is_dead", *set.Dead)
	}
	if set.Slug != nil {
		add("slug", *set.Slug)
	}
	if len(sets) == 0 {
		return r.ByID(ctx, appID)
	}

	sql := `update apps a set ` + strings.Join(sets, ", ") +
		` where a.id = ` + arg(appID) + ` returning ` + appCols
	a, err := scanApp(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowApp{}, perr.NotFoundf("app %d not found", appID)
		}
		return RowApp{}, perr.FromPostgres(err, "update app")
	}
	return a, nil
}

func (r *queries) Delete(ctx context.Context, appID int64) error {
	const sql = `delete from apps where id = $1`
	tag, err := r.q.Exec(ctx, sql, appID)
	if err != nil {
		return perr.FromPostgres(err, "delete app")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("app %d not found", appID)
	}
	return nil
}

func (r *queries) SetTools(ctx context.Context, appID int64, toolIDs []int64) error {
	return r.setRefs(ctx, "app_tools", "tool_id", appID, toolIDs)
}

func (r *queries) SetTags(ctx context.Context, appID int64, tagIDs []int64) error {
	return r.setRefs(ctx, "app_tags", "tag_id", appID, tagIDs)
}

func (r *queries) setRefs(ctx context.Context, table, col string, appID int64, ids []int64) error {
	if _, err := r.q.Exec(ctx, `delete from `+table+` where app_id = $1`, appID); err != nil {
		return perr.FromPostgres(err, "clear "+table)
	}
	if len(ids) == 0 {
		return nil
	}
	sql := `insert into ` + table + ` (app_id, ` + col + `) select $1, unnest($2::bigint[])`
	if _, err := r.q.Exec(ctx, sql, appID, ids); err != nil {
		if perr.IsForeignKeyViolation(err) {
			return perr.NotFoundf("unknown %s", col)
		}
		return perr.FromPostgres(err, "fill "+table)
	}
	return nil
}
