package models

import (
	"fmt"
	"time"
)

// Rating is the qualitative outcome of one day against one commitment.
// The raw values are part of the persisted schema and the snapshot
// surface; changing them silently corrupts data written by older builds.
type Rating int

const (
	RatingPoor Rating = 0
	RatingMeh  Rating = 1
	RatingGood Rating = 2
)

func (r Rating) String() string {
	switch r {
	case RatingPoor:
		return "poor"
	case RatingMeh:
		return "meh"
	case RatingGood:
		return "good"
	default:
		return fmt.Sprintf("rating(%d)", int(r))
	}
}

// ParseRating accepts the textual names used on the CLI as well as the
// raw ordinal values used by snapshot hosts.
func ParseRating(s string) (Rating, error) {
	switch s {
	case "poor", "0":
		return RatingPoor, nil
	case "meh", "1":
		return RatingMeh, nil
	case "good", "2":
		return RatingGood, nil
	default:
		return 0, fmt.Errorf("invalid rating %q (expected poor|meh|good)", s)
	}
}

// Checkin records one rating for one commitment on one day. DayKey is
// the identity used for upsert matching; Date is the wall-clock time of
// the most recent write, used for "recent N days" range filters.
type Checkin struct {
	ID           string    `json:"id"`
	CommitmentID string    `json:"commitment_id"`
	DayKey       string    `json:"day_key"`
	Date         time.Time `json:"date"`
	Rating       Rating    `json:"rating"`
	Note         string    `json:"note,omitempty"`
}
