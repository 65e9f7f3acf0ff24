package repo

import (
	"context"

	perr "showyourapp/internal/platform/errors"
)

const commentCols = `
c.id, c.app_id, c.user_id, u.username, c.body, c.created_at::text,
coalesce(sum(case when v.value = 1 then 1 else 0 end), 0)::int as upvotes,
coalesce(sum(case when v.value = -1 then 1 else 0 end), 0)::int as downvotes
`

const commentGroup = ` group by c.id, c.app_id, c.user_id, u.username, c.body, c.created_at`

func (r *queries) scanComment(row interface{ Scan(...any) error }) (RowComment, error) {
	var c RowComment
	err := row.Scan(&c.ID, &c.AppID, &c.UserID, &c.Username, &c.Body, &c.CreatedAt, &c.Upvotes, &c.Downvotes)
	return c, err
}

func (r *queries) ListComments(ctx context.Context, appID int64) ([]RowComment, error) {
	sql := `select ` + commentCols + `
from comments c
join users u on u.id = c.user_id
left join comment_votes v on v.comment_id = c.id
where c.app_id = $1` + commentGroup + `
order by c.created_at asc, c.id asc`
	rows, err := r.q.Query(ctx, sql, appID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list comments")
	}
	defer rows.Close()
	var out []RowComment
	for rows.Next() {
		c, err := r.scanComment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *queries) InsertComment(ctx context.Context, appID, userID int64, body string) (RowComment, error) {
	const sql = `
with ins as (
	insert into comments (app_id, user_id, body) values ($1, $2, $3)
	returning id, app_id, user_id, body, created_at
)
select ins.id, ins.app_id, ins.user_id, u.username, ins.body, ins.created_at::text, 0::int, 0::int
from ins join users u on u.id = ins.user_id`
	c, err := r.scanComment(r.q.QueryRow(ctx, sql, appID, userID, body))
	if err != nil {
		if perr.IsForeignKeyViolation(err) {
			return RowComment{}, perr.NotFoundf("app %d not found", appID)
		}
		return RowComment{}, perr.FromPostgres(err, "insert comment")
	}
	return c, nil
}

func (r *queries) CommentMeta(ctx context.Context, commentID int64) (int64, int64, error) {
	const sql = `select user_id, app_id from comments where id = $1`
	var author, app int64
	if err := r.q.QueryRow(ctx, sql, commentID).Scan(&author, &app); err != nil {
		return 0, 0, perr.NotFoundf("comment %d not found", commentID)
	}
	return author, app, nil
}

func (r *queries) UpdateComment(ctx context.Context, commentID int64, body string) (RowComment, error) {
	sql := `
with upd as (
	update comments set body = $2 where id = $1
	returning id, app_id, user_id, body, created_at
)
select ` + commentCols + `
from upd c
join users u on u.id = c.user_id
left join comment_votes v on v.comment_id = c.id` + commentGroup
	c, err := r.scanComment(r.q.QueryRow(ctx, sql, commentID, body))
	if err != nil {
		return RowComment{}, perr.FromPostgres(err, "update comment")
	}
	return c, nil
}

func (r *queries) DeleteComment(ctx context.Context, commentID int64) error {
	const sql = `delete from comments where id = $1`
	tag, err := r.q.Exec(ctx, sql, commentID)
	if err != nil {
		return perr.FromPostgres(err, "delete comment")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("comment %d not found", commentID)
	}
	return nil
}
