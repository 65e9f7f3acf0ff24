// Package rank owns the feed ordering formula and sort modes
package rank

import (
	"math"
	"time"
)

// Formula constants, versioned together. Changing any of them reshuffles
// every trending feed at once, so they only move deliberately
const (
	// EngagementCommentWeight counts a comment as this many likes
	EngagementCommentWeight = 2
	// EngagementFloor keeps brand-new apps with zero engagement above zero
	EngagementFloor = 1
	// AgeOffsetHours dampens the first hours so new posts don't dominate
	AgeOffsetHours = 2
	// Gravity controls how fast old posts sink
	Gravity = 1.8
)

// Score computes the trending score for one app.
// Negative ageHours clamps to zero so clock skew cannot boost a post
func Score(likes, comments int, ageHours float64) float64 {
	if ageHours < 0 {
		ageHours = 0
	}
	engagement := float64(likes + EngagementCommentWeight*comments + EngagementFloor)
	return engagement / math.Pow(ageHours+AgeOffsetHours, Gravity)
}

// AgeHours is the single age semantic shared by Score callers and the
// feed query: fractional hours between createdAt and now
func AgeHours(createdAt, now time.Time) float64 {
	return now.Sub(createdAt).Hours()
}

// Sort enumerates the feed orderings.
//
// Ordering contracts, each with a deterministic tie-break:
//
//	Trending  score desc, id desc
//	TopRated  avg review score (absent reviews as 0) desc, created_at desc, id desc
//	Likes     like count desc, created_at desc, id desc
//	Newest    created_at desc, id desc
type Sort string

const (
	Trending Sort = "trending"
	TopRated Sort = "top_rated"
	Likes    Sort = "likes"
	Newest   Sort = "newest"
)

// ParseSort maps a query-string value to a Sort.
// Unrecognized or empty input falls back to Newest
func ParseSort(s string) Sort {
	switch Sort(s) {
	case Trending, TopRated, Likes, Newest:
		return Sort(s)
	default:
		return Newest
	}
}
