// cmd/loadtester/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tamzrod/hoist-loadtester/internal/config"
	"github.com/tamzrod/hoist-loadtester/internal/form"
	"github.com/tamzrod/hoist-loadtester/internal/logging"
	"github.com/tamzrod/hoist-loadtester/internal/metrics"
	"github.com/tamzrod/hoist-loadtester/internal/report"
	"github.com/tamzrod/hoist-loadtester/internal/sampler"
	"github.com/tamzrod/hoist-loadtester/internal/status"
	"github.com/tamzrod/hoist-loadtester/internal/tui"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "path to config.yaml (defaults apply when empty)")
		formPath = flag.String("form", "", "form YAML for a headless run")
		address  = flag.String("address", "", "device address, overrides device.address")
		headless = flag.Bool("headless", false, "run one test without the console and write the report")
		logFile  = flag.String("log-file", "loadtester.log", "log destination while the console is open")
	)
	flag.Parse()

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *address != "" {
		cfg.Device.Address = *address
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	// The console owns the terminal, so its logs go to a file.
	sink := ""
	if !*headless {
		sink = *logFile
	}
	logger, err := logging.New(cfg.Log, sink)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Metrics
	// --------------------

	reg := prometheus.NewRegistry()
	prom, err := metrics.New(reg)
	if err != nil {
		logger.Fatal("metrics init failed", zap.Error(err))
	}
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := metrics.Serve(cfg.Metrics.Addr, reg); err != nil {
				logger.Error("metrics listener stopped", zap.Error(err))
			}
		}()
		logger.Info("metrics enabled", zap.String("addr", cfg.Metrics.Addr))
	}

	launch := func(addr string) (*sampler.Sampler, error) {
		return sampler.Build(cfg, addr,
			sampler.WithLogger(logger),
			sampler.WithObserver(prom),
		)
	}

	if *headless {
		if err := runHeadless(ctx, cfg, *formPath, launch, logger); err != nil {
			logger.Error("load test failed", zap.Error(err))
			_ = logger.Sync()
			os.Exit(1)
		}
		return
	}

	model := tui.NewModel(tui.Options{
		Context: ctx,
		Address: cfg.Device.Address,
		Launch:  launch,
		Generate: func(d *form.Data) (string, error) {
			return report.Generate(cfg.Report, d, time.Now())
		},
		Logger: logger,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("console failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// runHeadless performs one test, prints progress and writes the report.
func runHeadless(
	ctx context.Context,
	cfg *config.Config,
	formPath string,
	launch func(string) (*sampler.Sampler, error),
	logger *zap.Logger,
) error {
	d := form.New()
	if formPath != "" {
		var err error
		if d, err = form.Load(formPath); err != nil {
			return err
		}
	}
	// Fail before touching the device when the report could not be written.
	if err := d.Validate(); err != nil {
		return err
	}

	s, err := launch(cfg.Device.Address)
	if err != nil {
		return err
	}

	snap := status.Reset()
	sum, err := sampler.Wait(s.Start(ctx), func(ev sampler.Event) {
		snap = ev.Apply(snap)
		fmt.Println(status.Line(snap))
	})
	if err != nil {
		if errors.Is(err, sampler.ErrCancelled) {
			logger.Warn("load test cancelled", zap.String("run_id", s.RunID()))
		}
		return err
	}

	d.ApplySummary(sum)

	path, err := report.Generate(cfg.Report, d, time.Now())
	if err != nil {
		return err
	}
	logger.Info("report saved", zap.String("run_id", s.RunID()), zap.String("path", path))
	fmt.Println("report saved to:", path)
	return nil
}
