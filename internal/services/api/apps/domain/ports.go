package domain

import "context"

// ServicePort defines the service contract for apps
type ServicePort interface {
	Feed(ctx context.Context, f FeedFilter) ([]App, error)
	FindDuplicates(ctx context.Context, requesterID int64, q DuplicateQuery) ([]DuplicateHit, error)
	Get(ctx context.Context, identifier string, viewerID int64) (App, error)

	Create(ctx context.Context, creatorID int64, in CreateInput) (App, error)
	Update(ctx context.Context, appID, userID int64, in UpdateInput) (App, error)
	Delete(ctx context.Context, appID, userID int64) error
	Fork(ctx context.Context, appID, userID int64) (App, error)

	AddMedia(ctx context.Context, appID, userID int64, in MediaInput) (Media, error)
	RemoveMedia(ctx context.Context, appID, mediaID, userID int64) error

	ReportDead(ctx context.Context, appID, reporterID int64, in ReportInput) (DeadReport, error)
	PendingDeadReports(ctx context.Context, adminID int64) ([]DeadReport, error)
	ResolveDeadReport(ctx context.Context, reportID, adminID int64, in ResolveInput) (DeadReport, error)
}

// AdminGate answers whether a user may resolve moderation reports.
// The users module provides the implementation
type AdminGate interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}
