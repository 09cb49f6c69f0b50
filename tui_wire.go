package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/sysfetch/collectors"
	"gitlab.com/tinyland/lab/sysfetch/collectors/hostinfo"
	"gitlab.com/tinyland/lab/sysfetch/config"
	"gitlab.com/tinyland/lab/sysfetch/display/color"
	"gitlab.com/tinyland/lab/sysfetch/display/layout"
	"gitlab.com/tinyland/lab/sysfetch/display/render"
	"gitlab.com/tinyland/lab/sysfetch/display/tui"
)

// run loads configuration, takes the snapshot and hands it to the
// dashboard or the one-shot printer. Configuration problems are returned;
// dashboard failures are reported on stderr and do not fail the command.
func run(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg, opts, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	snap, err := collectSnapshot(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if opts.once {
		color.Apply(stdout)
		return runOnce(stdout, snap, opts.width, opts.height)
	}

	if err := runTUI(ctx, snap, logger); err != nil {
		fmt.Fprintf(stderr, "sysfetch: %v\n", err)
	}
	return nil
}

// collectSnapshot runs the host collector once.
func collectSnapshot(ctx context.Context, cfg *config.Config, logger *slog.Logger) (collectors.SystemSnapshot, error) {
	timeout, err := cfg.ProbeTimeoutDuration()
	if err != nil {
		return collectors.SystemSnapshot{}, err
	}

	c := hostinfo.NewCollector(hostinfo.Config{
		GPUProbe:      cfg.Collector.GPUProbe,
		ProbeTimeout:  timeout,
		IPProbeTarget: cfg.Collector.IPProbeTarget,
	}, logger)

	result := c.Collect(ctx)
	if result.Degraded() {
		logger.Info("snapshot degraded", "fallbacks", len(result.Warnings))
	}
	return result.Snapshot, nil
}

// runTUI shows the dashboard until a quit key is pressed. The terminal is
// restored by bubbletea on every exit path.
func runTUI(ctx context.Context, snap collectors.SystemSnapshot, logger *slog.Logger) error {
	p := tea.NewProgram(tui.NewModel(snap), tea.WithAltScreen(), tea.WithContext(ctx))

	logger.Debug("starting dashboard")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	logger.Debug("dashboard closed")
	return nil
}

// runOnce renders a single frame to w. Non-positive sizes are detected
// from the terminal.
func runOnce(w io.Writer, snap collectors.SystemSnapshot, width, height int) error {
	if width <= 0 || height <= 0 {
		dw, dh := layout.DetectTerminalSize()
		if width <= 0 {
			width = dw
		}
		if height <= 0 {
			height = dh
		}
	}

	frame := render.Render(width, height, &snap)
	_, err := fmt.Fprintln(w, render.Draw(frame))
	return err
}
