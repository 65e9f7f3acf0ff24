// Package repo provides postgres access for taxonomy
package repo

import (
	"context"

	perr "showyourapp/internal/platform/errors"

	"showyourapp/internal/modkit/repokit"
)

// Repo defines the repository contract for tools and tags
type Repo interface {
	ListTools(ctx context.Context) ([]RowEntry, error)
	ListTags(ctx context.Context) ([]RowEntry, error)
	InsertTool(ctx context.Context, name string) (RowEntry, error)
	InsertTag(ctx context.Context, name string) (RowEntry, error)
	DeleteTool(ctx context.Context, id int64) error
	DeleteTag(ctx context.Context, id int64) error
}

// RowEntry is a tool or tag row
type RowEntry struct {
	ID   int64
	Name string
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

func (r *queries) list(ctx context.Context, table string) ([]RowEntry, error) {
	sql := `select id, name from ` + table + ` order by id asc`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "list "+table)
	}
	defer rows.Close()
	var out []RowEntry
	for rows.Next() {
		var e RowEntry
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *queries) insert(ctx context.Context, table, name string) (RowEntry, error) {
	sql := `insert into ` + table + ` (name) values ($1) returning id, name`
	var e RowEntry
	if err := r.q.QueryRow(ctx, sql, name).Scan(&e.ID, &e.Name); err != nil {
		if perr.IsDuplicateKey(err) {
			return RowEntry{}, perr.Conflictf("%s %q already exists", table[:len(table)-1], name)
		}
		return RowEntry{}, perr.FromPostgres(err, "insert "+table)
	}
	return e, nil
}

func (r *queries) remove(ctx context.Context, table string, id int64) error {
	sql := `delete from ` + table + ` where id = $1`
	tag, err := r.q.Exec(ctx, sql, id)
	if err != nil {
		return perr.FromPostgres(err, "delete "+table)
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("%s %d not found", table[:len(table)-1], id)
	}
	return nil
}

func (r *queries) ListTools(ctx context.Context) ([]RowEntry, error) { return r.list(ctx, "tools") }
func (r *queries) ListTags(ctx context.Context) ([]RowEntry, error)  { return r.list(ctx, "tags") }

func (r *queries) InsertTool(ctx context.Context, name string) (RowEntry, error) {
	return r.insert(ctx, "tools", name)
}

func (r *queries) InsertTag(ctx context.Context, name string) (RowEntry, error) {
	return r.insert(ctx, "tags", name)
}

func (r *queries) DeleteTool(ctx context.Context, id int64) error { return r.remove(ctx, "tools", id) }
func (r *queries) DeleteTag(ctx context.Context, id int64) error  { return r.remove(ctx, "tags", id) }
