package repo

import (
	"context"
	"errors"

	perr "showyourapp/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

func (r *queries) InsertDeadReport(ctx context.Context, appID, reporterID int64, reason string) (RowReport, error) {
	const dupe = `
select exists (
	select 1 from dead_app_reports
	where app_id = $1 and reporter_id = $2 and status = 'pending'
)`
	var pending bool
	if err := r.q.QueryRow(ctx, dupe, appID, reporterID).Scan(&pending); err != nil {
		return RowReport{}, perr.FromPostgres(err, "check pending report")
	}
	if pending {
		return RowReport{}, perr.Conflictf("report already pending")
	}

	const sql = `
insert into dead_app_reports (app_id, reporter_id, reason, status)
values ($1, $2, nullif($3, ''), 'pending')
returning id, app_id, reporter_id, coalesce(reason, ''), status, created_at::text`
	var rep RowReport
	err := r.q.QueryRow(ctx, sql, appID, reporterID, reason).Scan(
		&rep.ID, &rep.AppID, &rep.ReporterID, &rep.Reason, &rep.Status, &rep.CreatedAt,
	)
	if err != nil {
		if perr.IsForeignKeyViolation(err) {
			return RowReport{}, perr.NotFoundf("app %d not found", appID)
		}
		return RowReport{}, perr.FromPostgres(err, "insert dead report")
	}
	return rep, nil
}

// PendingReports returns one row per reported app, newest report first,
// annotated with how many pending reports that app has collected
func (r *queries) PendingReports(ctx context.Context) ([]RowReport, error) {
	const sql = `
select id, app_id, reporter_id, reason, status, created_at, app_title, report_count
from (
	select
		r.id, r.app_id, r.reporter_id, coalesce(r.reason, '') as reason, r.status,
		r.created_at::text as created_at, a.title as app_title,
		count(*) over (partition by r.app_id)::int as report_count,
		row_number() over (partition by r.app_id order by r.created_at desc, r.id desc) as rn
	from dead_app_reports r
	join apps a on a.id = r.app_id
	where r.status = 'pending'
) x
where rn = 1
order by created_at desc`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "pending reports")
	}
	defer rows.Close()

	var out []RowReport
	for rows.Next() {
		var rep RowReport
		if err := rows.Scan(
			&rep.ID, &rep.AppID, &rep.ReporterID, &rep.Reason, &rep.Status,
			&rep.CreatedAt, &rep.AppTitle, &rep.ReportCount,
		); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *queries) ReportByID(ctx context.Context, reportID int64) (RowReport, error) {
	const sql = `
select id, app_id, reporter_id, coalesce(reason, ''), status, created_at::text, coalesce(resolved_at::text, '')
from dead_app_reports where id = $1`
	var rep RowReport
	err := r.q.QueryRow(ctx, sql, reportID).Scan(
		&rep.ID, &rep.AppID, &rep.ReporterID, &rep.Reason, &rep.Status, &rep.CreatedAt, &rep.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowReport{}, perr.NotFoundf("report %d not found", reportID)
		}
		return RowReport{}, perr.FromPostgres(err, "report by id")
	}
	return rep, nil
}

// ResolvePending settles every pending report for the app in one sweep
func (r *queries) ResolvePending(ctx context.Context, appID int64, status string) error {
	const sql = `
update dead_app_reports
set status = $2, resolved_at = now()
where app_id = $1 and status = 'pending'`
	if _, err := r.q.Exec(ctx, sql, appID, status); err != nil {
		return perr.FromPostgres(err, "resolve reports")
	}
	return nil
}

func (r *queries) MarkDead(ctx context.Context, appID int64) error {
	const sql = `update apps set is_dead = true where id = $1`
	tag, err := r.q.Exec(ctx, sql, appID)
	if err != nil {
		return perr.FromPostgres(err, "mark dead")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("app %d not found", appID)
	}
	return nil
}
