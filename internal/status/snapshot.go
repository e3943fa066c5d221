// internal/status/snapshot.go
package status

import (
	"fmt"
	"strings"

	"github.com/tamzrod/hoist-loadtester/internal/measure"
)

// Snapshot is what an orchestrator knows about the current run.
// It contains no logic and no memory of earlier runs.
type Snapshot struct {
	RunID     string
	Outcome   Outcome
	Iteration int
	Percent   int
	Summary   *measure.Summary
	LastError string
}

// Reset returns the idle snapshot.
func Reset() Snapshot {
	return Snapshot{Outcome: OutcomeIdle}
}

// Line renders s as a single status line.
// No IO. No side effects.
func Line(s Snapshot) string {
	switch s.Outcome {
	case OutcomeIdle:
		return "ready"
	case OutcomeRunning:
		return fmt.Sprintf("running %s: %d%%", shortID(s.RunID), s.Percent)
	case OutcomeCompleted:
		if s.Summary == nil {
			return fmt.Sprintf("completed %s", shortID(s.RunID))
		}
		parts := make([]string, 0, measure.ChannelCount)
		for _, ch := range measure.Channels {
			parts = append(parts, fmt.Sprintf("%s=%s", ch, measure.Format(s.Summary.Get(ch))))
		}
		return fmt.Sprintf("completed %s: %s", shortID(s.RunID), strings.Join(parts, " "))
	case OutcomeFailed:
		return fmt.Sprintf("failed %s: %s", shortID(s.RunID), s.LastError)
	case OutcomeCancelled:
		return fmt.Sprintf("cancelled %s after %d samples", shortID(s.RunID), s.Iteration)
	default:
		return s.Outcome.String()
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
