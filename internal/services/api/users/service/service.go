// Package service contains user identity and profile workflows
package service

import (
	"context"
	"strconv"

	"showyourapp/internal/modkit/repokit"
	"showyourapp/internal/services/api/users/domain"
	"showyourapp/internal/services/api/users/repo"
)

// Service defines the service contract for users
type Service interface {
	domain.ServicePort
	domain.KeyResolver
	domain.AdminGate
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new users service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// ResolveKey maps an API key to a user id, unauthorized on miss
func (s *Svc) ResolveKey(ctx context.Context, key string) (int64, error) {
	return s.Repo.ResolveKey(ctx, key)
}

// IsAdmin reports the user's admin flag
func (s *Svc) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	return s.Repo.IsAdmin(ctx, userID)
}

// TokenFunc adapts ResolveKey to the httpkit bearer port contract.
// The returned identity is the decimal user id
func (s *Svc) TokenFunc() func(ctx context.Context, token string) (string, error) {
	return func(ctx context.Context, token string) (string, error) {
		id, err := s.ResolveKey(ctx, token)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(id, 10), nil
	}
}

// ProfileByID fetches a public profile
func (s *Svc) ProfileByID(ctx context.Context, id int64) (domain.Profile, error) {
	row, err := s.Repo.ProfileByID(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	return toProfile(row), nil
}

// ProfileByUsername fetches a public profile by case-insensitive username
func (s *Svc) ProfileByUsername(ctx context.Context, username string) (domain.Profile, error) {
	row, err := s.Repo.ProfileByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}
	return toProfile(row), nil
}

func toProfile(r repo.RowProfile) domain.Profile {
	return domain.Profile{
		ID:         r.ID,
		Username:   r.Username,
		Reputation: r.Reputation,
		Followers:  r.Followers,
		Following:  r.Following,
		IsAdmin:    r.IsAdmin,
		CreatedAt:  r.CreatedAt,
	}
}
