package domain

import "context"

// ServicePort defines the service contract for taxonomy
type ServicePort interface {
	ListTools(ctx context.Context) ([]Tool, error)
	ListTags(ctx context.Context) ([]Tag, error)
	CreateTool(ctx context.Context, adminID int64, in CreateInput) (Tool, error)
	CreateTag(ctx context.Context, adminID int64, in CreateInput) (Tag, error)
	DeleteTool(ctx context.Context, adminID, toolID int64) error
	DeleteTag(ctx context.Context, adminID, tagID int64) error
}

// AdminGate answers whether a user may perform moderation actions.
// The users module provides the implementation
type AdminGate interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}
