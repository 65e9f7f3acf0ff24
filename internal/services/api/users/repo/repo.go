// Package repo provides postgres access for users
package repo

import (
	"context"

	perr "showyourapp/internal/platform/errors"

	"showyourapp/internal/modkit/repokit"
)

// Repo defines the repository contract for users
type Repo interface {
	ResolveKey(ctx context.Context, key string) (int64, error)
	IsAdmin(ctx context.Context, id int64) (bool, error)
	ProfileByID(ctx context.Context, id int64) (RowProfile, error)
	ProfileByUsername(ctx context.Context, username string) (RowProfile, error)
}

// RowProfile is a user row joined with follow counts
type RowProfile struct {
	ID         int64
	Username   string
	Reputation int
	Followers  int
	Following  int
	IsAdmin    bool
	CreatedAt  string
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

func (r *queries) ResolveKey(ctx context.Context, key string) (int64, error) {
	const sql = `select id from users where api_key = $1`
	var id int64
	if err := r.q.QueryRow(ctx, sql, key).Scan(&id); err != nil {
		// missing row and db failure both read as auth failure to the caller
		return 0, perr.Unauthorizedf("invalid bearer token")
	}
	return id, nil
}

func (r *queries) IsAdmin(ctx context.Context, id int64) (bool, error) {
	const sql = `select is_admin from users where id = $1`
	var admin bool
	if err := r.q.QueryRow(ctx, sql, id).Scan(&admin); err != nil {
		return false, perr.FromPostgresf(err, "is_admin user=%d", id)
	}
	return admin, nil
}

const profileSQL = `
select u.id, u.username, u.reputation, u.is_admin, u.created_at::text,
(select count(*) from follows f where f.followed_id = u.id) as followers,
(select count(*) from follows f where f.follower_id = u.id) as following
from users u
`

func (r *queries) scanProfile(row repokit.Row) (RowProfile, error) {
	var p RowProfile
	err := row.Scan(&p.ID, &p.Username, &p.Reputation, &p.IsAdmin, &p.CreatedAt, &p.Followers, &p.Following)
	return p, err
}

func (r *queries) ProfileByID(ctx context.Context, id int64) (RowProfile, error) {
	p, err := r.scanProfile(r.q.QueryRow(ctx, profileSQL+`where u.id = $1`, id))
	if err != nil {
		return RowProfile{}, perr.NotFoundf("user %d not found", id)
	}
	return p, nil
}

func (r *queries) ProfileByUsername(ctx context.Context, username string) (RowProfile, error) {
	p, err := r.scanProfile(r.q.QueryRow(ctx, profileSQL+`where lower(u.username) = lower($1)`, username))
	if err != nil {
		return RowProfile{}, perr.NotFoundf("user %q not found", username)
	}
	return p, nil
}
