// internal/status/snapshot_test.go
package status

import (
	"strings"
	"testing"

	"github.com/tamzrod/hoist-loadtester/internal/measure"
)

func TestLine_Running(t *testing.T) {
	s := Snapshot{RunID: "0123456789abcdef", Outcome: OutcomeRunning, Percent: 40}

	got := Line(s)
	if got != "running 01234567: 40%" {
		t.Fatalf("unexpected line: %q", got)
	}
}

func TestLine_CompletedListsEveryChannel(t *testing.T) {
	sum := measure.Summary{230, 231, 232, 1.005, 2.5, 3}
	s := Snapshot{RunID: "r1", Outcome: OutcomeCompleted, Summary: &sum}

	got := Line(s)
	for _, ch := range measure.Channels {
		if !strings.Contains(got, string(ch)+"=") {
			t.Fatalf("line %q missing channel %s", got, ch)
		}
	}
	if !strings.Contains(got, "current_2=2.50") {
		t.Fatalf("line %q missing formatted current_2", got)
	}
}

func TestOutcome_Terminal(t *testing.T) {
	terminal := map[Outcome]bool{
		OutcomeIdle:      false,
		OutcomeRunning:   false,
		OutcomeCompleted: true,
		OutcomeFailed:    true,
		OutcomeCancelled: true,
	}
	for o, want := range terminal {
		if o.Terminal() != want {
			t.Fatalf("%s: Terminal()=%v want %v", o, o.Terminal(), want)
		}
	}
}
