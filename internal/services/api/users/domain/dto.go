// Package domain holds DTOs for users http and service contracts
package domain

// Profile is the public shape of a user
type Profile struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Reputation int    `json:"reputation"`
	Followers  int    `json:"followers"`
	Following  int    `json:"following"`
	IsAdmin    bool   `json:"is_admin"`
	CreatedAt  string `json:"created_at"`
}

// Summary is the compact user shape embedded in app listings
type Summary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
