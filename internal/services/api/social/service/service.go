// Package service contains social workflows and their reputation effects
package service

import (
	"context"

	perr "showyourapp/internal/platform/errors"

	"showyourapp/internal/modkit/repokit"
	repdom "showyourapp/internal/services/reputation/domain"

	"showyourapp/internal/services/api/social/domain"
	"showyourapp/internal/services/api/social/repo"
)

// Service defines the service contract for social actions
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	ledger repdom.Ledger
}

// New creates a new social service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], ledger repdom.Ledger) *Svc {
	if db == nil {
		panic("social.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("social.Service requires a non nil Repo binder")
	}
	if ledger == nil {
		panic("social.Service requires a non nil reputation Ledger")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, ledger: ledger}
}

// credit applies a reputation delta unless the actor is the receiver
func (s *Svc) credit(ctx context.Context, q repokit.Queryer, actor, receiver int64, delta int) error {
	if actor == receiver {
		return nil
	}
	return s.ledger.Apply(ctx, q, receiver, delta)
}

// Like records a like and credits the app creator
func (s *Svc) Like(ctx context.Context, appID, userID int64) error {
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		creator, err := r.AppCreator(ctx, appID)
		if err != nil {
			return err
		}
		if err := r.InsertLike(ctx, appID, userID); err != nil {
			return err
		}
		return s.credit(ctx, q, userID, creator, repdom.DeltaLike)
	})
}

// Unlike removes a like and reverses the creator's credit
func (s *Svc) Unlike(ctx context.Context, appID, userID int64) error {
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		creator, err := r.AppCreator(ctx, appID)
		if err != nil {
			return err
		}
		if err := r.DeleteLike(ctx, appID, userID); err != nil {
			return err
		}
		return s.credit(ctx, q, userID, creator, -repdom.DeltaLike)
	})
}

// ListComments returns an app's comments oldest first
func (s *Svc) ListComments(ctx context.Context, appID int64) ([]domain.Comment, error) {
	rows, err := s.Repo.ListComments(ctx, appID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(rows))
	for _, r := range rows {
		out = append(out, toComment(r))
	}
	return out, nil
}

// CreateComment adds a comment to an app
func (s *Svc) CreateComment(ctx context.Context, appID, userID int64, in domain.CommentInput) (domain.Comment, error) {
	row, err := s.Repo.InsertComment(ctx, appID, userID, in.Body)
	if err != nil {
		return domain.Comment{}, err
	}
	return toComment(row), nil
}

// EditComment updates a comment's body, author only
func (s *Svc) EditComment(ctx context.Context, commentID, userID int64, in domain.CommentInput) (domain.Comment, error) {
	author, _, err := s.Repo.CommentMeta(ctx, commentID)
	if err != nil {
		return domain.Comment{}, err
	}
	if author != userID {
		return domain.Comment{}, perr.Forbiddenf("not your comment")
	}
	row, err := s.Repo.UpdateComment(ctx, commentID, in.Body)
	if err != nil {
		return domain.Comment{}, err
	}
	return toComment(row), nil
}

// DeleteComment removes a comment, author only
func (s *Svc) DeleteComment(ctx context.Context, commentID, userID int64) error {
	author, _, err := s.Repo.CommentMeta(ctx, commentID)
	if err != nil {
		return err
	}
	if author != userID {
		return perr.Forbiddenf("not your comment")
	}
	return s.Repo.DeleteComment(ctx, commentID)
}

// VoteComment records an up or down vote on a comment and credits its author.
// Re-voting the same direction is a no-op; switching direction flips the
// author's credit by twice the delta
func (s *Svc) VoteComment(ctx context.Context, commentID, userID int64, value int) error {
	if value != 1 && value != -1 {
		return perr.Newf(perr.ErrorCodeValidation, "vote value must be 1 or -1")
	}
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		author, _, err := r.CommentMeta(ctx, commentID)
		if err != nil {
			return err
		}
		prev, had, err := r.GetVote(ctx, commentID, userID)
		if err != nil {
			return err
		}
		if had && prev == value {
			return nil
		}
		if err := r.UpsertVote(ctx, commentID, userID, value); err != nil {
			return err
		}
		delta := value * repdom.DeltaCommentVote
		if had {
			delta = (value - prev) * repdom.DeltaCommentVote
		}
		return s.credit(ctx, q, userID, author, delta)
	})
}

// UnvoteComment removes a vote and reverses the author's credit
func (s *Svc) UnvoteComment(ctx context.Context, commentID, userID int64) error {
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		author, _, err := r.CommentMeta(ctx, commentID)
		if err != nil {
			return err
		}
		prev, had, err := r.GetVote(ctx, commentID, userID)
		if err != nil {
			return err
		}
		if !had {
			return perr.NotFoundf("vote not found")
		}
		if err := r.DeleteVote(ctx, commentID, userID); err != nil {
			return err
		}
		return s.credit(ctx, q, userID, author, -prev*repdom.DeltaCommentVote)
	})
}

// Follow records a follow and credits the followed user
func (s *Svc) Follow(ctx context.Context, followerID, followedID int64) error {
	if followerID == followedID {
		return perr.Newf(perr.ErrorCodeValidation, "cannot follow yourself")
	}
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.InsertFollow(ctx, followerID, followedID); err != nil {
			return err
		}
		return s.ledger.Apply(ctx, q, followedID, repdom.DeltaFollow)
	})
}

// Unfollow removes a follow and reverses the credit
func (s *Svc) Unfollow(ctx context.Context, followerID, followedID int64) error {
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.DeleteFollow(ctx, followerID, followedID); err != nil {
			return err
		}
		return s.ledger.Apply(ctx, q, followedID, -repdom.DeltaFollow)
	})
}

// CreateReview records a one-per-user rating of an app
func (s *Svc) CreateReview(ctx context.Context, appID, userID int64, in domain.ReviewInput) (domain.Review, error) {
	row, err := s.Repo.InsertReview(ctx, appID, userID, in.Score, in.Body)
	if err != nil {
		return domain.Review{}, err
	}
	return toReview(row), nil
}

// ListReviews returns an app's reviews newest first
func (s *Svc) ListReviews(ctx context.Context, appID int64) ([]domain.Review, error) {
	rows, err := s.Repo.ListReviews(ctx, appID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(rows))
	for _, r := range rows {
		out = append(out, toReview(r))
	}
	return out, nil
}

func toComment(r repo.RowComment) domain.Comment {
	return domain.Comment{
		ID:        r.ID,
		AppID:     r.AppID,
		UserID:    r.UserID,
		Username:  r.Username,
		Body:      r.Body,
		Upvotes:   r.Upvotes,
		Downvotes: r.Downvotes,
		CreatedAt: r.CreatedAt,
	}
}

func toReview(r repo.RowReview) domain.Review {
	return domain.Review{
		ID:        r.ID,
		AppID:     r.AppID,
		UserID:    r.UserID,
		Score:     r.Score,
		Body:      r.Body,
		CreatedAt: r.CreatedAt,
	}
}
