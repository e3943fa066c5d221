// internal/sampler/sampler.go
package sampler

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tamzrod/hoist-loadtester/internal/measure"
)

// DefaultIterations is the number of reads in one load test.
const DefaultIterations = 15

// DefaultInterval paces the device between reads.
const DefaultInterval = 200 * time.Millisecond

// Client abstracts the Modbus operations needed by the sampler.
type Client interface {
	ReadInputRegisters(addr, qty uint16) ([]uint16, error) // FC 4
	Close() error
}

// Factory dials a fresh Client. ONE attempt per call.
type Factory func() (Client, error)

// Config is the immutable shape of one run.
type Config struct {
	RunID      string // generated when empty
	Iterations int
	Interval   time.Duration
}

// Sampler drives one bounded polling run against one connection.
// A Sampler runs at most once; build a new one for the next test.
type Sampler struct {
	cfg     Config
	factory Factory
	log     *zap.Logger
	obs     Observer

	started  atomic.Bool
	stopped  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
}

// Option customizes a Sampler.
type Option func(*Sampler)

// WithLogger sets the structured logger. Default: no-op.
func WithLogger(l *zap.Logger) Option {
	return func(s *Sampler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver sets the telemetry observer. Default: no-op.
func WithObserver(o Observer) Option {
	return func(s *Sampler) {
		if o != nil {
			s.obs = o
		}
	}
}

var errAlreadyStarted = errors.New("sampler: run already started")

// New creates a sampler with immutable config.
func New(cfg Config, factory Factory, opts ...Option) (*Sampler, error) {
	if factory == nil {
		return nil, errors.New("sampler: client factory required")
	}
	if cfg.Iterations <= 0 {
		return nil, errors.New("sampler: iterations must be > 0")
	}
	if cfg.Interval < 0 {
		return nil, errors.New("sampler: interval must be >= 0")
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}

	s := &Sampler{
		cfg:     cfg,
		factory: factory,
		log:     zap.NewNop(),
		obs:     nopObserver{},
		stopCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("run_id", cfg.RunID))

	return s, nil
}

// RunID identifies this run in events, logs and metrics.
func (s *Sampler) RunID() string {
	return s.cfg.RunID
}

// Iterations returns the configured iteration count.
func (s *Sampler) Iterations() int {
	return s.cfg.Iterations
}

// Stop requests cancellation. The run checks it before every read and
// while pacing; an in-flight read is allowed to finish.
// Safe to call from any goroutine, any number of times.
func (s *Sampler) Stop() {
	s.stopOnce.Do(func() {
		s.stopped.Store(true)
		close(s.stopCh)
	})
}

// Stopped reports whether Stop has been called.
func (s *Sampler) Stopped() bool {
	return s.stopped.Load()
}

// pollOnce performs exactly one read of the register block.
// All-or-nothing: any failure returns no reading.
func (s *Sampler) pollOnce(c Client) (r measure.Reading, err error) {
	defer func() {
		if p := recover(); p != nil {
			r = measure.Reading{}
			err = fmt.Errorf("%w: panic: %v", ErrDecode, p)
		}
	}()

	start := time.Now()
	regs, rerr := c.ReadInputRegisters(measure.StartAddress, measure.RegisterCount)
	latency := time.Since(start)

	switch {
	case rerr != nil:
		err = fmt.Errorf("%w: %w", ErrRead, rerr)
	case regs == nil:
		err = fmt.Errorf("%w: empty response", ErrRead)
	case len(regs) != measure.RegisterCount:
		err = fmt.Errorf("%w: got %d registers, want %d", ErrRead, len(regs), measure.RegisterCount)
	}
	// Observed after validation: a short block is a failed read.
	s.obs.ReadObserved(latency, err)
	if err != nil {
		return r, err
	}

	r, err = measure.Decode(regs)
	if err != nil {
		return measure.Reading{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return r, nil
}
