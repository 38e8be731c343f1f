package models

// CreateActionRequest is the payload of POST /api/actions.
type CreateActionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TargetCount int    `json:"targetCount"`
}

// UpdateActionRequest is the payload of PATCH /api/actions/{id}.
// Pointer fields distinguish "not provided" from zero values.
type UpdateActionRequest struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	TargetCount  *int    `json:"targetCount,omitempty"`
	CurrentCount *int    `json:"currentCount,omitempty"`
}

// RecordProgressRequest is the payload of POST /api/progress.
type RecordProgressRequest struct {
	ActionID int64 `json:"actionId"`
	Count    int   `json:"count"`
}

// DecrementProgressRequest is the payload of POST /api/progress/decrement.
type DecrementProgressRequest struct {
	ActionID int64 `json:"actionId"`
}

// ErrorResponse is the JSON body returned by the API for failed requests.
// The Error string is stable: the client adapter maps well-known values back
// to sentinel errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
