package adapter

import "errors"

// Sentinel errors produced by the transport layer. mapHTTPError translates
// HTTP status codes and well-known response bodies into these values so that
// callers can branch with [errors.Is] without knowing about HTTP.
var (
	// ErrRemote covers network failures and any non-2xx response that does
	// not map to a more specific sentinel.
	ErrRemote = errors.New("remote call failed")

	// ErrUnauthorized is returned when the server rejects the bearer
	// credential (HTTP 401). Callers should trigger re-authentication
	// instead of retrying blindly.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrActionNotFound is returned when the targeted action is absent on
	// the server or not owned by the caller (HTTP 404).
	ErrActionNotFound = errors.New("action not found")

	// ErrAlreadyAtMaximum is returned when a positive progress delta cannot
	// be applied because the action already reached its target count.
	ErrAlreadyAtMaximum = errors.New("action already at maximum progress")

	// ErrAlreadyAtMinimum is returned when a decrement cannot be applied
	// because the action's current count is already zero.
	ErrAlreadyAtMinimum = errors.New("action already at minimum progress")

	// ErrActionCompleted is returned when positive progress is recorded
	// against an action whose completed flag is set.
	ErrActionCompleted = errors.New("cannot add progress to completed action")

	// ErrInvalidResponse is returned when the server responds with a 2xx
	// status but the payload is malformed or missing required fields.
	ErrInvalidResponse = errors.New("invalid server response")
)
