package domain

import "context"

// ServicePort defines the service contract for users
type ServicePort interface {
	ProfileByID(ctx context.Context, id int64) (Profile, error)
	ProfileByUsername(ctx context.Context, username string) (Profile, error)
}

// KeyResolver turns a bearer API key into a user id.
// Pass/fail only; key issuing lives outside this service
type KeyResolver interface {
	ResolveKey(ctx context.Context, key string) (int64, error)
}

// AdminGate reports whether a user holds the admin flag
type AdminGate interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}
