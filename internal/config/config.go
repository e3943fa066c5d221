// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Device  DeviceConfig  `yaml:"device"`
	Run     RunConfig     `yaml:"run"`
	Report  ReportConfig  `yaml:"report"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Address   string `yaml:"address"` // host or host:port; port defaults to 502
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- RUN ----

type RunConfig struct {
	Iterations int `yaml:"iterations"`
	IntervalMs int `yaml:"interval_ms"`
}

// ---- REPORT ----

type ReportConfig struct {
	Template  string `yaml:"template"` // .xlsx template; empty => built-in PDF layout
	OutputDir string `yaml:"output_dir"`
	Format    string `yaml:"format"` // "pdf" or "xlsx"
	Title     string `yaml:"title"`
}

// ---- METRICS ----

type MetricsConfig struct {
	Addr string `yaml:"addr"` // empty => no /metrics listener
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty => stderr
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := seed()
	c.applyDefaults()
	return &c
}

// seed holds defaults for keys where zero is a valid setting.
// They are set before decoding, so only an absent key keeps them.
func seed() Config {
	return Config{
		Run: RunConfig{IntervalMs: DefaultIntervalMs},
	}
}

// Load reads a YAML file and applies defaults.
// An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := seed()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Device.Address == "" {
		c.Device.Address = DefaultAddress
	}
	if c.Device.UnitID == 0 {
		c.Device.UnitID = 1
	}
	if c.Device.TimeoutMs == 0 {
		c.Device.TimeoutMs = 3000
	}
	if c.Run.Iterations == 0 {
		c.Run.Iterations = 15
	}
	if c.Report.OutputDir == "" {
		c.Report.OutputDir = "."
	}
	if c.Report.Format == "" {
		if c.Report.Template != "" {
			c.Report.Format = FormatXLSX
		} else {
			c.Report.Format = FormatPDF
		}
	}
	if c.Report.Title == "" {
		c.Report.Title = "Hoist Load Test Report"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// DefaultAddress is the factory address of the load-test device.
const DefaultAddress = "192.168.13.11"

// DefaultIntervalMs is the pause between reads when run.interval_ms is absent.
const DefaultIntervalMs = 200

// Report formats.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)
