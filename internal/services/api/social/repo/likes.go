package repo

import (
	"context"

	perr "showyourapp/internal/platform/errors"
)

func (r *queries) InsertLike(ctx context.Context, appID, userID int64) error {
	const sql = `insert into likes (app_id, user_id) values ($1, $2)`
	if _, err := r.q.Exec(ctx, sql, appID, userID); err != nil {
		if perr.IsDuplicateKey(err) {
			return perr.Conflictf("already liked")
		}
		if perr.IsForeignKeyViolation(err) {
			return perr.NotFoundf("app %d not found", appID)
		}
		return perr.FromPostgres(err, "insert like")
	}
	return nil
}

func (r *queries) DeleteLike(ctx context.Context, appID, userID int64) error {
	const sql = `delete from likes where app_id = $1 and user_id = $2`
	tag, err := r.q.Exec(ctx, sql, appID, userID)
	if err != nil {
		return perr.FromPostgres(err, "delete like")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("like not found")
	}
	return nil
}

func (r *queries) InsertFollow(ctx context.Context, followerID, followedID int64) error {
	const sql = `insert into follows (follower_id, followed_id) values ($1, $2)`
	if _, err := r.q.Exec(ctx, sql, followerID, followedID); err != nil {
		if perr.IsDuplicateKey(err) {
			return perr.Conflictf("already following")
		}
		if perr.IsForeignKeyViolation(err) {
			return perr.NotFoundf("user %d not found", followedID)
		}
		return perr.FromPostgres(err, "insert follow")
	}
	return nil
}

func (r *queries) DeleteFollow(ctx context.Context, followerID, followedID int64) error {
	const sql = `delete from follows where follower_id = $1 and followed_id = $2`
	tag, err := r.q.Exec(ctx, sql, followerID, followedID)
	if err != nil {
		return perr.FromPostgres(err, "delete follow")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("follow not found")
	}
	return nil
}
