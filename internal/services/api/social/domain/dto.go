// Package domain holds DTOs for social http and service contracts
package domain

// Comment is one comment on an app
type Comment struct {
	ID        int64  `json:"id"`
	AppID     int64  `json:"app_id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Body      string `json:"body"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
	CreatedAt string `json:"created_at"`
}

// CommentInput carries a new or edited comment body
type CommentInput struct {
	Body string `json:"body" validate:"required,min=1,max=4000"`
}

// VoteInput carries a comment vote direction
type VoteInput struct {
	Value int `json:"value" validate:"required,oneof=-1 1"`
}

// Review is one user's rating of an app
type Review struct {
	ID        int64  `json:"id"`
	AppID     int64  `json:"app_id"`
	UserID    int64  `json:"user_id"`
	Score     int    `json:"score"`
	Body      string `json:"body,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ReviewInput carries a new review
type ReviewInput struct {
	Score int    `json:"score" validate:"required,min=1,max=5"`
	Body  string `json:"body,omitempty" validate:"omitempty,max=4000"`
}
