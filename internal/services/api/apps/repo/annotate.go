package repo

import (
	"context"

	perr "showyourapp/internal/platform/errors"
)

// Batch aggregate fetches. Each runs once per page of listings so the
// feed never fans out into per-row queries.

func (r *queries) LikeCounts(ctx context.Context, appIDs []int64) (map[int64]int, error) {
	return r.counts(ctx, "likes", appIDs)
}

func (r *queries) CommentCounts(ctx context.Context, appIDs []int64) (map[int64]int, error) {
	return r.counts(ctx, "comments", appIDs)
}

func (r *queries) counts(ctx context.Context, table string, appIDs []int64) (map[int64]int, error) {
	out := make(map[int64]int, len(appIDs))
	if len(appIDs) == 0 {
		return out, nil
	}
	sql := `select app_id, count(*)::int from ` + table + ` where app_id = any($1) group by app_id`
	rows, err := r.q.Query(ctx, sql, appIDs)
	if err != nil {
		return nil, perr.FromPostgres(err, "count "+table)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}

func (r *queries) LikedSet(ctx context.Context, appIDs []int64, viewerID int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(appIDs))
	if len(appIDs) == 0 || viewerID == 0 {
		return out, nil
	}
	const sql = `select app_id from likes where app_id = any($1) and user_id = $2`
	rows, err := r.q.Query(ctx, sql, appIDs, viewerID)
	if err != nil {
		return nil, perr.FromPostgres(err, "liked set")
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}

func (r *queries) ToolsFor(ctx context.Context, appIDs []int64) (map[int64][]RowRef, error) {
	return r.refs(ctx, "app_tools", "tool_id", "tools", appIDs)
}

func (r *queries) TagsFor(ctx context.Context, appIDs []int64) (map[int64][]RowRef, error) {
	return r.refs(ctx, "app_tags", "tag_id", "tags", appIDs)
}

func (r *queries) refs(ctx context.Context, assoc, fk, table string, appIDs []int64) (map[int64][]RowRef, error) {
	out := make(map[int64][]RowRef, len(appIDs))
	if len(appIDs) == 0 {
		return out, nil
	}
	sql := `select x.app_id, t.id, t.name from ` + assoc + ` x
join ` + table + ` t on t.id = x.` + fk + `
where x.app_id = any($1)
order by t.name asc, t.id asc`
	rows, err := r.q.Query(ctx, sql, appIDs)
	if err != nil {
		return nil, perr.FromPostgres(err, "list "+table)
	}
	defer rows.Close()
	for rows.Next() {
		var appID int64
		var ref RowRef
		if err := rows.Scan(&appID, &ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		out[appID] = append(out[appID], ref)
	}
	return out, rows.Err()
}

func (r *queries) MediaFor(ctx context.Context, appIDs []int64) (map[int64][]RowMedia, error) {
	out := make(map[int64][]RowMedia, len(appIDs))
	if len(appIDs) == 0 {
		return out, nil
	}
	const sql = `select id, app_id, url, object_key from app_media where app_id = any($1) order by id asc`
	rows, err := r.q.Query(ctx, sql, appIDs)
	if err != nil {
		return nil, perr.FromPostgres(err, "list media")
	}
	defer rows.Close()
	for rows.Next() {
		var m RowMedia
		if err := rows.Scan(&m.ID, &m.AppID, &m.URL, &m.ObjectKey); err != nil {
			return nil, err
		}
		out[m.AppID] = append(out[m.AppID], m)
	}
	return out, rows.Err()
}

func (r *queries) CreatorsFor(ctx context.Context, userIDs []int64) (map[int64]RowCreator, error) {
	out := make(map[int64]RowCreator, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	const sql = `select id, username, coalesce(avatar, '') from users where id = any($1)`
	rows, err := r.q.Query(ctx, sql, userIDs)
	if err != nil {
		return nil, perr.FromPostgres(err, "list creators")
	}
	defer rows.Close()
	for rows.Next() {
		var c RowCreator
		if err := rows.Scan(&c.ID, &c.Username, &c.Avatar); err != nil {
			return nil, err
		}
		out[c.ID] = c
	}
	return out, rows.Err()
}
