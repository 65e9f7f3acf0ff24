// Package domain holds DTOs for taxonomy http and service contracts
package domain

// Tool is a building-block entry apps can be tagged with (e.g. "Claude Code", "Cursor")
type Tool struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Tag is a free-form category label
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateInput names a new tool or tag
type CreateInput struct {
	Name string `json:"name" validate:"required,min=1,max=100" example:"Claude Code"`
}
