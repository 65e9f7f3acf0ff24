// Package repo provides postgres access for social actions
package repo

import (
	"context"

	perr "showyourapp/internal/platform/errors"

	"showyourapp/internal/modkit/repokit"
)

// Repo defines the repository contract for social actions
type Repo interface {
	AppCreator(ctx context.Context, appID int64) (int64, error)

	InsertLike(ctx context.Context, appID, userID int64) error
	DeleteLike(ctx context.Context, appID, userID int64) error

	ListComments(ctx context.Context, appID int64) ([]RowComment, error)
	InsertComment(ctx context.Context, appID, userID int64, body string) (RowComment, error)
	CommentMeta(ctx context.Context, commentID int64) (authorID, appID int64, err error)
	UpdateComment(ctx context.Context, commentID int64, body string) (RowComment, error)
	DeleteComment(ctx context.Context, commentID int64) error

	GetVote(ctx context.Context, commentID, userID int64) (int, bool, error)
	UpsertVote(ctx context.Context, commentID, userID int64, value int) error
	DeleteVote(ctx context.Context, commentID, userID int64) error

	InsertFollow(ctx context.Context, followerID, followedID int64) error
	DeleteFollow(ctx context.Context, followerID, followedID int64) error

	InsertReview(ctx context.Context, appID, userID int64, score int, body string) (RowReview, error)
	ListReviews(ctx context.Context, appID int64) ([]RowReview, error)
}

// RowComment is a comment row joined with author and vote tallies
type RowComment struct {
	ID        int64
	AppID     int64
	UserID    int64
	Username  string
	Body      string
	Upvotes   int
	Downvotes int
	CreatedAt string
}

// RowReview is a review row
type RowReview struct {
	ID        int64
	AppID     int64
	UserID    int64
	Score     int
	Body      string
	CreatedAt string
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

func (r *queries) AppCreator(ctx context.Context, appID int64) (int64, error) {
	const sql = `select creator_id from apps where id = $1`
	var creator int64
	if err := r.q.QueryRow(ctx, sql, appID).Scan(&creator); err != nil {
		return 0, perr.NotFoundf("app %d not found", appID)
	}
	return creator, nil
}
