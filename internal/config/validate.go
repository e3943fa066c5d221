// internal/config/validate.go
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}

	// ------------------------------------------------------------
	// DEVICE
	// ------------------------------------------------------------

	addr := strings.TrimSpace(cfg.Device.Address)
	if addr == "" {
		return fmt.Errorf("device.address is required")
	}
	if strings.ContainsAny(addr, " \t/") {
		return fmt.Errorf("device.address %q must be a host or host:port", cfg.Device.Address)
	}
	if cfg.Device.TimeoutMs < 0 {
		return fmt.Errorf("device.timeout_ms must be >= 0, got %d", cfg.Device.TimeoutMs)
	}

	// ------------------------------------------------------------
	// RUN
	// ------------------------------------------------------------

	if cfg.Run.Iterations < 1 {
		return fmt.Errorf("run.iterations must be >= 1, got %d", cfg.Run.Iterations)
	}
	if cfg.Run.IntervalMs < 0 {
		return fmt.Errorf("run.interval_ms must be >= 0, got %d", cfg.Run.IntervalMs)
	}

	// ------------------------------------------------------------
	// REPORT
	// ------------------------------------------------------------

	switch strings.ToLower(cfg.Report.Format) {
	case FormatPDF:
	case FormatXLSX:
		if cfg.Report.Template == "" {
			return fmt.Errorf("report.format %q requires report.template", FormatXLSX)
		}
		if ext := strings.ToLower(filepath.Ext(cfg.Report.Template)); ext != ".xlsx" {
			return fmt.Errorf("report.template %q must be an .xlsx workbook", cfg.Report.Template)
		}
	default:
		return fmt.Errorf("report.format must be %q or %q, got %q", FormatPDF, FormatXLSX, cfg.Report.Format)
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", cfg.Log.Level)
	}

	return nil
}
