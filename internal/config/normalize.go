// internal/config/normalize.go
package config

import (
	"strings"

	"github.com/tamzrod/hoist-loadtester/internal/sampler/modbus"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// Address: trim and add the Modbus port when missing.
	cfg.Device.Address = modbus.Endpoint(strings.TrimSpace(cfg.Device.Address))

	cfg.Report.Format = strings.ToLower(cfg.Report.Format)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
}
