package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	perr "showyourapp/internal/platform/errors"
)

func (r *queries) GetVote(ctx context.Context, commentID, userID int64) (int, bool, error) {
	const sql = `select value from comment_votes where comment_id = $1 and user_id = $2`
	var v int
	err := r.q.QueryRow(ctx, sql, commentID, userID).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, perr.FromPostgres(err, "get vote")
	}
	return v, true, nil
}

func (r *queries) UpsertVote(ctx context.Context, commentID, userID int64, value int) error {
	const sql = `
insert into comment_votes (comment_id, user_id, value) values ($1, $2, $3)
on conflict (comment_id, user_id) do update set value = excluded.value`
	if _, err := r.q.Exec(ctx, sql, commentID, userID, value); err != nil {
		if perr.IsForeignKeyViolation(err) {
			return perr.NotFoundf("comment %d not found", commentID)
		}
		return perr.FromPostgres(err, "upsert vote")
	}
	return nil
}

func (r *queries) DeleteVote(ctx context.Context, commentID, userID int64) error {
	const sql = `delete from comment_votes where comment_id = $1 and user_id = $2`
	tag, err := r.q.Exec(ctx, sql, commentID, userID)
	if err != nil {
		return perr.FromPostgres(err, "delete vote")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("vote not found")
	}
	return nil
}

func (r *queries) InsertReview(ctx context.Context, appID, userID int64, score int, body string) (RowReview, error) {
	const sql = `
insert into reviews (app_id, user_id, score, body) values ($1, $2, $3, $4)
returning id, app_id, user_id, score, body, created_at::text`
	var rv RowReview
	err := r.q.QueryRow(ctx, sql, appID, userID, score, body).
		Scan(&rv.ID, &rv.AppID, &rv.UserID, &rv.Score, &rv.Body, &rv.CreatedAt)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return RowReview{}, perr.Conflictf("already reviewed")
		}
		if perr.IsForeignKeyViolation(err) {
			return RowReview{}, perr.NotFoundf("app %d not found", appID)
		}
		return RowReview{}, perr.FromPostgres(err, "insert review")
	}
	return rv, nil
}

func (r *queries) ListReviews(ctx context.Context, appID int64) ([]RowReview, error) {
	const sql = `
select id, app_id, user_id, score, body, created_at::text
from reviews where app_id = $1
order by created_at desc, id desc`
	rows, err := r.q.Query(ctx, sql, appID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list reviews")
	}
	defer rows.Close()
	var out []RowReview
	for rows.Next() {
		var rv RowReview
		if err := rows.Scan(&rv.ID, &rv.AppID, &rv.UserID, &rv.Score, &rv.Body, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
