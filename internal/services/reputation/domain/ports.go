// Package domain defines the reputation ledger contract
package domain

import (
	"context"

	"showyourapp/internal/modkit/repokit"
)

// Deltas applied to a user's reputation when they receive the event.
// Self-actions are suppressed by the caller, not here
const (
	DeltaLike        = 2
	DeltaFollow      = 5
	DeltaCommentVote = 1
)

// Ledger applies an additive reputation change inside the caller's transaction.
// There is no dedupe and no decay; reversals are the caller applying the
// negative delta
type Ledger interface {
	Apply(ctx context.Context, q repokit.Queryer, userID int64, delta int) error
}
