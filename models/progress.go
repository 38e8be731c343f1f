package models

import "time"

// Progress is an immutable record of a single signed delta applied to an
// action's current count. Progress rows are append-only: they are never
// updated, and are removed only by the cascading delete of their action.
type Progress struct {
	ID       int64 `json:"id"`
	ActionID int64 `json:"actionId"`

	// Count is the effective (possibly clamped) delta that was applied,
	// not the delta the caller requested.
	Count int `json:"count"`

	CreatedAt time.Time `json:"createdAt"`
}

// ProgressResult is the response of the progress endpoints: the recorded
// event together with the action state after the delta was applied.
type ProgressResult struct {
	Progress Progress `json:"progress"`
	Action   Action   `json:"action"`
}
