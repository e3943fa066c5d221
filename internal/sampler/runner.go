// internal/sampler/runner.go
package sampler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tamzrod/hoist-loadtester/internal/measure"
	"github.com/tamzrod/hoist-loadtester/internal/status"
)

// Run executes the run and emits its events on out, then closes out.
// It blocks until the run ends; call it on its own goroutine (or use Start).
// Every exit path emits exactly one terminal event, unless ctx is done
// while out has no room.
func (s *Sampler) Run(ctx context.Context, out chan<- Event) {
	defer close(out)

	emit := func(ev Event) bool {
		ev.RunID = s.cfg.RunID
		select {
		case out <- ev:
			return true
		default:
		}
		select {
		case out <- ev:
			return true
		case <-ctx.Done():
			s.log.Warn("event dropped", zap.Stringer("kind", ev.Kind))
			return false
		}
	}

	if !s.started.CompareAndSwap(false, true) {
		emit(Event{Kind: EventError, Err: errAlreadyStarted})
		return
	}

	s.obs.RunStarted(s.cfg.RunID)
	s.log.Info("run started",
		zap.Int("iterations", s.cfg.Iterations),
		zap.Duration("interval", s.cfg.Interval))

	fail := func(err error, samples int) {
		s.log.Warn("run failed", zap.Int("samples", samples), zap.Error(err))
		s.obs.RunFinished(s.cfg.RunID, status.OutcomeFailed, nil)
		emit(Event{Kind: EventError, Err: err, Samples: samples})
	}
	cancel := func(samples int) {
		s.log.Info("run cancelled", zap.Int("samples", samples))
		s.obs.RunFinished(s.cfg.RunID, status.OutcomeCancelled, nil)
		emit(Event{Kind: EventCancelled, Samples: samples})
	}

	if s.cancelled(ctx) {
		cancel(0)
		return
	}

	client, err := s.factory()
	if err != nil {
		fail(fmt.Errorf("%w: %w", ErrConnection, err), 0)
		return
	}
	if client == nil {
		fail(fmt.Errorf("%w: factory returned no client", ErrConnection), 0)
		return
	}
	// Reads are synchronous, so by the time this runs no frame is in flight.
	defer func() {
		if err := client.Close(); err != nil {
			s.log.Debug("close failed", zap.Error(err))
		}
	}()

	n := s.cfg.Iterations
	series := measure.NewSeries(n)

	for i := 0; i < n; i++ {
		if s.cancelled(ctx) {
			cancel(series.Len())
			return
		}

		r, err := s.pollOnce(client)
		if err != nil {
			fail(fmt.Errorf("iteration %d: %w", i, err), series.Len())
			return
		}

		// Commit only after the whole block decoded.
		series.Append(r)
		s.log.Debug("iteration committed", zap.Int("iteration", i))

		emit(Event{
			Kind:      EventProgress,
			Iteration: i,
			Percent:   (i + 1) * 100 / n,
		})

		if i < n-1 && !s.pause(ctx) {
			cancel(series.Len())
			return
		}
	}

	sum, err := series.Summary()
	if err != nil {
		fail(fmt.Errorf("%w: %w", ErrDecode, err), series.Len())
		return
	}

	fields := make([]zap.Field, 0, measure.ChannelCount)
	for _, ch := range measure.Channels {
		fields = append(fields, zap.Float32(string(ch), sum.Get(ch)))
	}
	s.log.Info("run completed", fields...)

	s.obs.RunFinished(s.cfg.RunID, status.OutcomeCompleted, &sum)
	emit(Event{Kind: EventResult, Summary: sum, Samples: series.Len()})
	emit(Event{Kind: EventCompleted, Samples: series.Len()})
}

// Start runs the sampler on a new goroutine and returns its event stream.
// The stream is buffered for the whole run, so the worker never waits on
// a slow orchestrator. The channel is closed once the run has ended and the
// connection has been released.
func (s *Sampler) Start(ctx context.Context) <-chan Event {
	out := make(chan Event, s.cfg.Iterations+3)
	go s.Run(ctx, out)
	return out
}

// Wait drains events until the stream closes, calling fn (if non-nil) for each.
// It returns the summary of a completed run, ErrCancelled for a stopped run,
// or the error carried by the failure event.
func Wait(events <-chan Event, fn func(Event)) (measure.Summary, error) {
	var (
		sum      measure.Summary
		err      error
		terminal bool
	)

	for ev := range events {
		if fn != nil {
			fn(ev)
		}
		switch ev.Kind {
		case EventResult:
			sum = ev.Summary
		case EventCompleted:
			terminal = true
		case EventError:
			err, terminal = ev.Err, true
		case EventCancelled:
			err, terminal = ErrCancelled, true
		}
	}

	if !terminal {
		return measure.Summary{}, ErrCancelled
	}
	if err != nil {
		return measure.Summary{}, err
	}
	return sum, nil
}

func (s *Sampler) cancelled(ctx context.Context) bool {
	return s.stopped.Load() || ctx.Err() != nil
}

// pause waits one interval. False means the run was cancelled meanwhile.
func (s *Sampler) pause(ctx context.Context) bool {
	if s.cfg.Interval <= 0 {
		return !s.cancelled(ctx)
	}

	t := time.NewTimer(s.cfg.Interval)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-s.stopCh:
		return false
	case <-ctx.Done():
		return false
	}
}
