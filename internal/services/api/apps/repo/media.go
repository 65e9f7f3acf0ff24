package repo

import (
	"context"

	perr "showyourapp/internal/platform/errors"
)

func (r *queries) InsertMedia(ctx context.Context, appID int64, url, objectKey string) (RowMedia, error) {
	const sql = `
insert into app_media (app_id, url, object_key)
values ($1, $2, $3)
returning id, app_id, url, object_key`
	var m RowMedia
	if err := r.q.QueryRow(ctx, sql, appID, url, objectKey).Scan(&m.ID, &m.AppID, &m.URL, &m.ObjectKey); err != nil {
		if perr.IsForeignKeyViolation(err) {
			return RowMedia{}, perr.NotFoundf("app %d not found", appID)
		}
		return RowMedia{}, perr.FromPostgres(err, "insert media")
	}
	return m, nil
}

func (r *queries) DeleteMedia(ctx context.Context, appID, mediaID int64) error {
	const sql = `delete from app_media where id = $1 and app_id = $2`
	tag, err := r.q.Exec(ctx, sql, mediaID, appID)
	if err != nil {
		return perr.FromPostgres(err, "delete media")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("media %d not found", mediaID)
	}
	return nil
}
