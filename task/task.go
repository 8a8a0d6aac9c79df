// Package task implements the bounded polling loop used by every
// asynchronous Camb AI capability: submit a job, watch its status until a
// terminal state, and hand the final snapshot to a result resolver.
package task

import "encoding/json"

// State is the closed classification of a provider task status. Provider
// responses spell their states several ways; every spelling is translated
// into a State exactly once, at the boundary, so downstream logic never
// compares raw strings.
type State int

const (
	// StatePending covers every non-terminal status, including statuses
	// the provider has not given a recognizable value.
	StatePending State = iota
	// StateCompleted means the task finished and a result can be resolved.
	StateCompleted
	// StateFailed means the provider reported a fatal task error.
	StateFailed
)

// String returns a lower-case name for logging.
func (s State) String() string {
	switch s {
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "pending"
	}
}

// successStatuses and failureStatuses are the fixed recognized sets. The
// provider mixes spellings across endpoints ("completed" vs "SUCCESS"),
// so both variants are members rather than applying a general case fold.
var (
	successStatuses = map[string]bool{"completed": true, "SUCCESS": true}
	failureStatuses = map[string]bool{"failed": true, "FAILED": true, "error": true}
)

// ParseState maps a raw provider status string onto the closed State enum.
// Unrecognized or empty values classify as pending.
func ParseState(raw string) State {
	switch {
	case successStatuses[raw]:
		return StateCompleted
	case failureStatuses[raw]:
		return StateFailed
	default:
		return StatePending
	}
}

// Status is a point-in-time snapshot of one provider task. Each snapshot is
// an independent idempotent read; fetching it has no effect on the task.
type Status struct {
	// TaskID identifies the task the snapshot belongs to.
	TaskID string
	// State is the normalized classification of Raw.
	State State
	// Raw is the provider's original status spelling, kept for diagnostics.
	Raw string
	// RunID is the provider's execution record for a completed task. Zero
	// means the provider has not reported one, mirroring the provider's own
	// treatment of a missing or zero run id.
	RunID int64
	// Error carries the provider's failure message when State is failed.
	Error string
	// Message is the undecoded remainder of the status payload. Its shape is
	// not contractually stable: it may be an object holding a result URL, a
	// bare URL string, or absent entirely. The resolver interprets it.
	Message json.RawMessage
}
