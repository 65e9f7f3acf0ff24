package service

import (
	"context"

	perr "showyourapp/internal/platform/errors"

	"showyourapp/internal/modkit/repokit"
	"showyourapp/internal/services/api/apps/domain"
	"showyourapp/internal/services/api/apps/repo"
)

// ReportDead files a dead-listing claim; one pending report per
// reporter per app
func (s *Svc) ReportDead(ctx context.Context, appID, reporterID int64, in domain.ReportInput) (domain.DeadReport, error) {
	var out domain.DeadReport
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		row, err := r.InsertDeadReport(ctx, appID, reporterID, in.Reason)
		if err != nil {
			return err
		}
		out = toReport(row)
		return nil
	})
	return out, err
}

// PendingDeadReports lists reported apps for moderation; admin only
func (s *Svc) PendingDeadReports(ctx context.Context, adminID int64) ([]domain.DeadReport, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	rows, err := s.Repo.PendingReports(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DeadReport, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReport(row))
	}
	return out, nil
}

// ResolveDeadReport settles every pending report for the reported app.
// Confirming flips the listing to dead; dismissing leaves it alone
func (s *Svc) ResolveDeadReport(ctx context.Context, reportID, adminID int64, in domain.ResolveInput) (domain.DeadReport, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return domain.DeadReport{}, err
	}
	if in.Status != domain.ReportConfirmed && in.Status != domain.ReportDismissed {
		return domain.DeadReport{}, perr.Newf(perr.ErrorCodeValidation, "status must be confirmed or dismissed")
	}

	var out domain.DeadReport
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		rep, err := r.ReportByID(ctx, reportID)
		if err != nil {
			return err
		}
		if rep.Status != domain.ReportPending {
			return perr.Newf(perr.ErrorCodeValidation, "report already resolved")
		}
		if err := r.ResolvePending(ctx, rep.AppID, in.Status); err != nil {
			return err
		}
		if in.Status == domain.ReportConfirmed {
			if err := r.MarkDead(ctx, rep.AppID); err != nil {
				return err
			}
		}
		resolved, err := r.ReportByID(ctx, reportID)
		if err != nil {
			return err
		}
		out = toReport(resolved)
		return nil
	})
	return out, err
}

func toReport(row repo.RowReport) domain.DeadReport {
	return domain.DeadReport{
		ID:          row.ID,
		AppID:       row.AppID,
		ReporterID:  row.ReporterID,
		Reason:      row.Reason,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
		ResolvedAt:  row.ResolvedAt,
		AppTitle:    row.AppTitle,
		ReportCount: row.ReportCount,
	}
}
