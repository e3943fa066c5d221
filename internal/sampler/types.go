// internal/sampler/types.go
package sampler

import (
	"github.com/tamzrod/hoist-loadtester/internal/measure"
	"github.com/tamzrod/hoist-loadtester/internal/status"
)

// EventKind identifies one lifecycle event of a run.
type EventKind uint8

const (
	// EventProgress: iteration Iteration has just been committed.
	EventProgress EventKind = iota + 1
	// EventError: the run failed; Err holds the cause. Terminal.
	EventError
	// EventResult: Summary holds the per-channel maxima.
	EventResult
	// EventCompleted: the run succeeded. Terminal, always after EventResult.
	EventCompleted
	// EventCancelled: the run was stopped before completion. Terminal.
	EventCancelled
)

func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "progress"
	case EventError:
		return "error"
	case EventResult:
		return "result"
	case EventCompleted:
		return "completed"
	case EventCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Event is one message from a running Sampler to its orchestrator.
// Events are values; nothing in them aliases worker state.
type Event struct {
	RunID string
	Kind  EventKind

	// Iteration is the 0-based iteration just committed (progress only).
	Iteration int
	// Percent is (Iteration+1)*100/Iterations, so the last progress event is 100.
	Percent int

	// Samples is the committed series length (terminal events only).
	Samples int

	Summary measure.Summary // EventResult only
	Err     error           // EventError only
}

// IsError reports whether the event carries a failure.
func (e Event) IsError() bool {
	return e.Kind == EventError
}

// Terminal reports whether e ends the run.
func (e Event) Terminal() bool {
	return e.Kind == EventError || e.Kind == EventCompleted || e.Kind == EventCancelled
}

// Apply folds e into an orchestrator snapshot.
func (e Event) Apply(s status.Snapshot) status.Snapshot {
	s.RunID = e.RunID

	switch e.Kind {
	case EventProgress:
		s.Outcome = status.OutcomeRunning
		s.Iteration = e.Iteration + 1
		s.Percent = e.Percent
	case EventResult:
		sum := e.Summary
		s.Summary = &sum
	case EventCompleted:
		s.Outcome = status.OutcomeCompleted
		s.Iteration = e.Samples
		s.Percent = 100
	case EventError:
		s.Outcome = status.OutcomeFailed
		s.Iteration = e.Samples
		if e.Err != nil {
			s.LastError = e.Err.Error()
		}
	case EventCancelled:
		s.Outcome = status.OutcomeCancelled
		s.Iteration = e.Samples
	}

	return s
}
