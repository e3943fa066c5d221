// internal/status/constants.go
package status

// Run outcome codes.
// A run starts Running and ends in exactly one terminal outcome.

// Outcome is the lifecycle state of the most recent run.
type Outcome uint16

// OutcomeIdle represents no run since start (or since the last reset).
const OutcomeIdle Outcome = 0

// OutcomeRunning represents a run in progress.
const OutcomeRunning Outcome = 1

// OutcomeCompleted represents a run that produced a summary.
const OutcomeCompleted Outcome = 2

// OutcomeFailed represents a run aborted by a connection, read or decode error.
const OutcomeFailed Outcome = 3

// OutcomeCancelled represents a run stopped by the operator.
const OutcomeCancelled Outcome = 4

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeRunning:
		return "running"
	case OutcomeCompleted:
		return "completed"
	case OutcomeFailed:
		return "failed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether o ends a run.
func (o Outcome) Terminal() bool {
	return o == OutcomeCompleted || o == OutcomeFailed || o == OutcomeCancelled
}
