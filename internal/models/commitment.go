package models

import "time"

// Commitment is a self-directed rule the user wants to keep, e.g. "no
// phone after 23:00". Pros/Cons/IfThen are optional motivation notes;
// empty strings are normalized to nil at the write boundary.
type Commitment struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Pros       *string    `json:"pros,omitempty"`
	Cons       *string    `json:"cons,omitempty"`
	IfThen     *string    `json:"if_then,omitempty"`
	Priority   int        `json:"priority"`
	CreatedAt  time.Time  `json:"created_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}
