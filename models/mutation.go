package models

// MutationKind discriminates the three operations the client can buffer
// while offline.
type MutationKind string

const (
	MutationCreate MutationKind = "create"
	MutationUpdate MutationKind = "update"
	MutationDelete MutationKind = "delete"
)

// PendingMutation is a locally buffered, not-yet-acknowledged change awaiting
// replay against the server. The full action payload is carried for every
// kind: a delete needs it for reconciliation after replay, and create/update
// need it to reproduce the call.
//
// Ordering is significant. Mutations replay strictly in enqueue order because
// later mutations may depend on the effect of earlier ones on the same entity
// (update-then-delete must not collapse into delete).
type PendingMutation struct {
	Kind   MutationKind `json:"kind"`
	Action Action       `json:"action"`
}
