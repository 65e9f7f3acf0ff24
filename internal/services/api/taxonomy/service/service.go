// Package service contains taxonomy workflows
package service

import (
	"context"
	"strings"

	perr "showyourapp/internal/platform/errors"

	"showyourapp/internal/modkit/repokit"
	"showyourapp/internal/services/api/taxonomy/domain"
	"showyourapp/internal/services/api/taxonomy/repo"
)

// Service defines the service contract for taxonomy
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	admins domain.AdminGate
}

// New creates a new taxonomy service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], admins domain.AdminGate) *Svc {
	if db == nil {
		panic("taxonomy.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("taxonomy.Service requires a non nil Repo binder")
	}
	if admins == nil {
		panic("taxonomy.Service requires a non nil AdminGate")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, admins: admins}
}

func (s *Svc) requireAdmin(ctx context.Context, userID int64) error {
	ok, err := s.admins.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return perr.Forbiddenf("admin only")
	}
	return nil
}

// ListTools returns all tools ordered by id
func (s *Svc) ListTools(ctx context.Context) ([]domain.Tool, error) {
	rows, err := s.Repo.ListTools(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Tool, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Tool{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

// ListTags returns all tags ordered by id
func (s *Svc) ListTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := s.Repo.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Tag, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Tag{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

// CreateTool inserts a tool; admin only, names are unique
func (s *Svc) CreateTool(ctx context.Context, adminID int64, in domain.CreateInput) (domain.Tool, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return domain.Tool{}, err
	}
	row, err := s.Repo.InsertTool(ctx, strings.TrimSpace(in.Name))
	if err != nil {
		return domain.Tool{}, err
	}
	return domain.Tool{ID: row.ID, Name: row.Name}, nil
}

// CreateTag inserts a tag; admin only, names are unique
func (s *Svc) CreateTag(ctx context.Context, adminID int64, in domain.CreateInput) (domain.Tag, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return domain.Tag{}, err
	}
	row, err := s.Repo.InsertTag(ctx, strings.TrimSpace(in.Name))
	if err != nil {
		return domain.Tag{}, err
	}
	return domain.Tag{ID: row.ID, Name: row.Name}, nil
}

// DeleteTool removes a tool; admin only
func (s *Svc) DeleteTool(ctx context.Context, adminID, toolID int64) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	return s.Repo.DeleteTool(ctx, toolID)
}

// DeleteTag removes a tag; admin only
func (s *Svc) DeleteTag(ctx context.Context, adminID, tagID int64) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	return s.Repo.DeleteTag(ctx, tagID)
}
