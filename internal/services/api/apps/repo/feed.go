package repo

import (
	"context"
	"strconv"
	"strings"

	"showyourapp/internal/core/rank"
	perr "showyourapp/internal/platform/errors"
)

// Filter narrows and orders the feed query.
// The service layer owns defaults and caps; this layer only translates
type Filter struct {
	ToolIDs   []int64
	ToolNames []string
	TagIDs    []int64
	TagNames  []string
	Search    string
	Status    string
	CreatorID int64
	LikedBy   int64

	IncludeDead bool
	Sort        rank.Sort
	Offset      int
	Limit       int
}

// Feed runs the one feed query: filtering and ordering compose into a
// single statement so pagination stays consistent across sorts
func (r *queries) Feed(ctx context.Context, f Filter) ([]RowApp, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return "$" + strconv.Itoa(len(args)) }

	sb.WriteString(`select ` + appCols + ` from apps a where true`)

	if !f.IncludeDead {
		sb.WriteString("\n  and a.is_dead = false")
	}

	refFilter(&sb, arg, "app_tools", "tool_id", "tools", f.ToolIDs, f.ToolNames)
	refFilter(&sb, arg, "app_tags", "tag_id", "tags", f.TagIDs, f.TagNames)

	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		sb.WriteString("\n  and (a.title ilike " + p +
			" or a.hook ilike " + p +
			" or a.description ilike " + p + ")")
	}
	if f.Status != "" {
		sb.WriteString("\n  and a.status = " + arg(f.Status))
	}
	if f.CreatorID != 0 {
		sb.WriteString("\n  and a.creator_id = " + arg(f.CreatorID))
	}
	if f.LikedBy != 0 {
		sb.WriteString("\n  and exists (select 1 from likes l where l.app_id = a.id and l.user_id = " + arg(f.LikedBy) + ")")
	}

	switch f.Sort {
	case rank.Trending:
		// gravity scoring in SQL; the constants stay in core/rank and
		// travel as parameters so the formula has one home
		likes := `(select count(*) from likes l where l.app_id = a.id)`
		comments := `(select count(*) from comments c where c.app_id = a.id)`
		age := `greatest(extract(epoch from (now() - a.created_at)) / 3600, 0)`
		sb.WriteString("\norder by (" + likes + " + " + arg(rank.EngagementCommentWeight) + " * " + comments +
			" + " + arg(rank.EngagementFloor) + ")::float8" +
			" / power(" + age + " + " + arg(rank.AgeOffsetHours) + ", " + arg(rank.Gravity) + ") desc, a.id desc")
	case rank.TopRated:
		sb.WriteString("\norder by coalesce((select avg(rv.score) from reviews rv where rv.app_id = a.id), 0) desc, a.created_at desc, a.id desc")
	case rank.Likes:
		sb.WriteString("\norder by (select count(*) from likes l where l.app_id = a.id) desc, a.created_at desc, a.id desc")
	default:
		sb.WriteString("\norder by a.created_at desc, a.id desc")
	}

	sb.WriteString("\noffset " + arg(f.Offset) + " limit " + arg(f.Limit))

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "feed query")
	}
	defer rows.Close()

	out := make([]RowApp, 0, f.Limit)
	for rows.Next() {
		a, err := scanApp(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// refFilter appends the tool or tag predicate. Ids win over names;
// multiple names match exactly, a single name matches as a substring
func refFilter(sb *strings.Builder, arg func(any) string, assoc, fk, table string, ids []int64, names []string) {
	switch {
	case len(ids) > 0:
		sb.WriteString("\n  and a.id in (select x.app_id from " + assoc + " x where x." + fk + " = any(" + arg(ids) + "))")
	case len(names) > 1:
		sb.WriteString("\n  and a.id in (select x.app_id from " + assoc + " x join " + table +
			" t on t.id = x." + fk + " where t.name = any(" + arg(names) + "))")
	case len(names) == 1:
		sb.WriteString("\n  and a.id in (select x.app_id from " + assoc + " x join " + table +
			" t on t.id = x." + fk + " where t.name ilike " + arg("%"+names[0]+"%") + ")")
	}
}
