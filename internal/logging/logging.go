// internal/logging/logging.go
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tamzrod/hoist-loadtester/internal/config"
)

// New builds the process logger from cfg.
// When file is non-empty it overrides cfg.File; the interactive console
// passes one so log lines never reach the terminal.
func New(cfg config.LogConfig, file string) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = level > zapcore.DebugLevel

	out := cfg.File
	if file != "" {
		out = file
	}
	if out != "" {
		zc.OutputPaths = []string{out}
		zc.ErrorOutputPaths = []string{out}
	}

	return zc.Build()
}
