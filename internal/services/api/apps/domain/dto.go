// Package domain holds DTOs for apps http and service contracts
package domain

import (
	"encoding/json"

	"showyourapp/internal/core/rank"
)

// Creator is the listing author summary embedded in feed rows
type Creator struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// Ref is a tool or tag attached to a listing
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Media is one media object attached to a listing
type Media struct {
	ID        int64  `json:"id"`
	AppID     int64  `json:"app_id"`
	URL       string `json:"url"`
	ObjectKey string `json:"object_key"`
}

// App is a listing with its feed annotations
type App struct {
	ID             int64           `json:"id"`
	CreatorID      int64           `json:"creator_id"`
	Title          string          `json:"title"`
	Hook           string          `json:"hook,omitempty"`
	Description    string          `json:"description,omitempty"`
	ExtraSpecs     json.RawMessage `json:"extra_specs,omitempty"`
	Status         Status          `json:"status"`
	AppURL         string          `json:"app_url,omitempty"`
	YoutubeURL     string          `json:"youtube_url,omitempty"`
	AgentSubmitted bool            `json:"is_agent_submitted"`
	OwnerListing   bool            `json:"is_owner"`
	Dead           bool            `json:"is_dead"`
	ParentID       *int64          `json:"parent_app_id,omitempty"`
	Slug           string          `json:"slug"`
	CreatedAt      string          `json:"created_at"`

	LikesCount    int     `json:"likes_count"`
	CommentsCount int     `json:"comments_count"`
	Liked         bool    `json:"is_liked"`
	Tools         []Ref   `json:"tools"`
	Tags          []Ref   `json:"tags"`
	Media         []Media `json:"media"`
	Creator       Creator `json:"creator"`
}

// FeedFilter narrows and orders the listing feed.
// Zero values mean "not filtered"; ViewerID 0 means anonymous
type FeedFilter struct {
	ToolIDs   []int64
	ToolNames string
	TagIDs    []int64
	TagNames  string
	Search    string
	Status    Status
	CreatorID int64
	LikedBy   int64

	IncludeDead bool
	Sort        rank.Sort
	Offset      int
	Limit       int

	ViewerID int64
}

// CreateInput carries a new listing
type CreateInput struct {
	Title          string          `json:"title" validate:"required,min=1,max=200"`
	Hook           string          `json:"hook,omitempty"`
	Description    string          `json:"description,omitempty"`
	ExtraSpecs     json.RawMessage `json:"extra_specs,omitempty"`
	Status         string          `json:"status" validate:"required"`
	AppURL         string          `json:"app_url,omitempty" validate:"omitempty,max=2048"`
	YoutubeURL     string          `json:"youtube_url,omitempty" validate:"omitempty,max=2048"`
	AgentSubmitted bool            `json:"is_agent_submitted,omitempty"`
	OwnerListing   bool            `json:"is_owner,omitempty"`
	ParentID       *int64          `json:"parent_app_id,omitempty"`
	ToolIDs        []int64         `json:"tool_ids,omitempty"`
	TagIDs         []int64         `json:"tag_ids,omitempty"`
}

// UpdateInput carries a partial listing edit; nil fields stay untouched
type UpdateInput struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Hook        *string          `json:"hook,omitempty"`
	Description *string          `json:"description,omitempty"`
	ExtraSpecs  *json.RawMessage `json:"extra_specs,omitempty"`
	Status      *string          `json:"status,omitempty"`
	AppURL      *string          `json:"app_url,omitempty" validate:"omitempty,max=2048"`
	YoutubeURL  *string          `json:"youtube_url,omitempty" validate:"omitempty,max=2048"`
	Dead        *bool            `json:"is_dead,omitempty"`
	ToolIDs     *[]int64         `json:"tool_ids,omitempty"`
	TagIDs      *[]int64         `json:"tag_ids,omitempty"`
}

// DuplicateQuery asks for existing listings matching a URL and/or title
type DuplicateQuery struct {
	URL   string `json:"url,omitempty"`
	Title string `json:"title,omitempty"`
}

// DuplicateHit is one candidate duplicate, annotated for the requester
type DuplicateHit struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	Status    Status  `json:"status"`
	AppURL    string  `json:"app_url,omitempty"`
	CreatedAt string  `json:"created_at"`
	Creator   Creator `json:"creator"`
	IsMine    bool    `json:"is_mine"`
}

// MediaInput carries a media URL to attach
type MediaInput struct {
	URL string `json:"url" validate:"required,max=2048"`
}

// Dead report resolution states
const (
	ReportPending   = "pending"
	ReportConfirmed = "confirmed"
	ReportDismissed = "dismissed"
)

// DeadReport is one user's claim that a listing no longer works
type DeadReport struct {
	ID          int64  `json:"id"`
	AppID       int64  `json:"app_id"`
	ReporterID  int64  `json:"reporter_id"`
	Reason      string `json:"reason,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	ResolvedAt  string `json:"resolved_at,omitempty"`
	AppTitle    string `json:"app_title,omitempty"`
	ReportCount int    `json:"report_count,omitempty"`
}

// ReportInput carries a dead report reason
type ReportInput struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=2000"`
}

// ResolveInput carries an admin's verdict on a dead report
type ResolveInput struct {
	Status string `json:"status" validate:"required,oneof=confirmed dismissed"`
}
