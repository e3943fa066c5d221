// internal/sampler/builder.go
package sampler

import (
	"time"

	cfg "github.com/tamzrod/hoist-loadtester/internal/config"
	smodbus "github.com/tamzrod/hoist-loadtester/internal/sampler/modbus"
)

// Build constructs a Sampler for one run against address and wires the
// Modbus client lifecycle: the run dials on start and closes when it ends.
// An empty address falls back to c.Device.Address.
func Build(c *cfg.Config, address string, opts ...Option) (*Sampler, error) {
	if address == "" {
		address = c.Device.Address
	}

	// client factory: ONE attempt per call
	factory := func() (Client, error) {
		cli, err := smodbus.Dial(smodbus.Config{
			Address: address,
			UnitID:  c.Device.UnitID,
			Timeout: time.Duration(c.Device.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return nil, err
		}
		return cli, nil
	}

	return New(
		Config{
			Iterations: c.Run.Iterations,
			Interval:   time.Duration(c.Run.IntervalMs) * time.Millisecond,
		},
		factory,
		opts...,
	)
}
