package domain

import perr "showyourapp/internal/platform/errors"

// Status is the lifecycle stage of a listing
type Status string

// Listing stages, stored verbatim
const (
	StatusConcept Status = "Concept"
	StatusWIP     Status = "WIP"
	StatusLive    Status = "Live"
)

// ParseStatus is the only way a raw string becomes a Status.
// Unknown values fail validation rather than leaking past the boundary
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConcept, StatusWIP, StatusLive:
		return Status(s), nil
	}
	return "", perr.Newf(perr.ErrorCodeValidation, "unknown status %q", s)
}
