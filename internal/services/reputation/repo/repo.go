// Package repo provides the Postgres reputation ledger
package repo

import (
	"context"

	perr "showyourapp/internal/platform/errors"

	"showyourapp/internal/modkit/repokit"
	"showyourapp/internal/services/reputation/domain"
)

// PG implements domain.Ledger against Postgres
type PG struct{}

var _ domain.Ledger = PG{}

// New returns the Postgres ledger
func New() PG { return PG{} }

// Apply adds delta to the user's reputation using the caller's queryer,
// so the change commits or rolls back with the triggering action
func (PG) Apply(ctx context.Context, q repokit.Queryer, userID int64, delta int) error {
	if delta == 0 {
		return nil
	}
	const sql = `update users set reputation = reputation + $2 where id = $1`
	tag, err := q.Exec(ctx, sql, userID, delta)
	if err != nil {
		return perr.FromPostgresf(err, "reputation apply user=%d", userID)
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("user %d not found", userID)
	}
	return nil
}
