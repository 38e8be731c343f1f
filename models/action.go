package models

import "time"

// Action is a trackable goal: a titled target count with accumulated progress.
//
// Completed is kept equal to CurrentCount >= TargetCount after every write;
// both the server services and the client sync queue maintain this invariant.
type Action struct {
	// ID is the server-assigned identifier. A client that created the action
	// while offline holds a temporary negative identifier until the first
	// successful sync replaces it with the authoritative one.
	ID int64 `json:"id"`

	// UserID is the identifier of the owning user account.
	UserID int64 `json:"userId,omitempty"`

	// Title is the short human-readable goal name. Never empty.
	Title string `json:"title"`

	// Description is an optional longer explanation of the goal.
	Description string `json:"description,omitempty"`

	// TargetCount is the positive count at which the action is complete.
	TargetCount int `json:"targetCount"`

	// CurrentCount is the accumulated progress, 0 <= CurrentCount <= TargetCount.
	CurrentCount int `json:"currentCount"`

	// Completed is true iff CurrentCount >= TargetCount.
	Completed bool `json:"completed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsTemporary reports whether the action still carries a locally generated
// placeholder identifier that the server has never seen.
func (a Action) IsTemporary() bool {
	return a.ID < 0
}
