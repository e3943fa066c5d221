// internal/sampler/observer.go
package sampler

import (
	"time"

	"github.com/tamzrod/hoist-loadtester/internal/measure"
	"github.com/tamzrod/hoist-loadtester/internal/status"
)

// Observer receives run telemetry. Implementations must not block.
type Observer interface {
	RunStarted(runID string)
	ReadObserved(latency time.Duration, err error)
	RunFinished(runID string, outcome status.Outcome, summary *measure.Summary)
}

type nopObserver struct{}

func (nopObserver) RunStarted(string)                                    {}
func (nopObserver) ReadObserved(time.Duration, error)                    {}
func (nopObserver) RunFinished(string, status.Outcome, *measure.Summary) {}
