package domain

import "context"

// ServicePort defines the service contract for social actions.
// Every mutation takes the acting user explicitly; reputation effects
// land on the receiving side and never on self-actions
type ServicePort interface {
	Like(ctx context.Context, appID, userID int64) error
	Unlike(ctx context.Context, appID, userID int64) error

	ListComments(ctx context.Context, appID int64) ([]Comment, error)
	CreateComment(ctx context.Context, appID, userID int64, in CommentInput) (Comment, error)
	EditComment(ctx context.Context, commentID, userID int64, in CommentInput) (Comment, error)
	DeleteComment(ctx context.Context, commentID, userID int64) error

	VoteComment(ctx context.Context, commentID, userID int64, value int) error
	UnvoteComment(ctx context.Context, commentID, userID int64) error

	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error

	CreateReview(ctx context.Context, appID, userID int64, in ReviewInput) (Review, error)
	ListReviews(ctx context.Context, appID int64) ([]Review, error)
}
