// Package gpu identifies the primary graphics adapter by running the
// platform's hardware diagnostic tool and parsing its text output.
package gpu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"runtime"
)

var (
	// ErrUnsupportedPlatform is returned on hosts with no known probe.
	ErrUnsupportedPlatform = errors.New("gpu: no probe for this platform")

	// ErrNoDevice is returned when the probe ran but its output held no
	// recognisable device name.
	ErrNoDevice = errors.New("gpu: no device name in probe output")
)

// Platform selects which diagnostic tool and parser are used.
type Platform int

const (
	// PlatformOther has no probe; it always reports ErrUnsupportedPlatform.
	PlatformOther Platform = iota
	// PlatformWindows queries WMI through wmic.
	PlatformWindows
	// PlatformLinux lists PCI devices with lspci.
	PlatformLinux
	// PlatformMacOS reads the display report from system_profiler.
	PlatformMacOS
)

// String returns the lowercase platform name.
func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformLinux:
		return "linux"
	case PlatformMacOS:
		return "macos"
	default:
		return "other"
	}
}

// PlatformFor maps a GOOS value to its probe platform.
func PlatformFor(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformMacOS
	default:
		return PlatformOther
	}
}

// HostPlatform returns the probe platform of the running binary.
func HostPlatform() Platform {
	return PlatformFor(runtime.GOOS)
}

// probe is one platform's command line and output parser.
type probe struct {
	name  string
	args  []string
	parse func(output []byte) (string, bool)
}

var probes = map[Platform]probe{
	PlatformWindows: {
		name:  "wmic",
		args:  []string{"path", "win32_VideoController", "get", "name", "/format:value"},
		parse: parseWMIC,
	},
	PlatformLinux: {
		name:  "lspci",
		args:  []string{"-mm"},
		parse: parseLspci,
	},
	PlatformMacOS: {
		name:  "system_profiler",
		args:  []string{"SPDisplaysDataType", "-json"},
		parse: parseSystemProfiler,
	},
}

// CommandRunner runs name with args and returns its standard output.
// A non-nil error may still come with usable output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// runCommand is the default CommandRunner backed by os/exec.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Prober runs the GPU probe for a single platform.
type Prober struct {
	platform Platform
	logger   *slog.Logger

	// run allows injection of command execution for testing.
	run CommandRunner
}

// NewProber creates a Prober for the given platform.
// If logger is nil, a no-op logger is used.
func NewProber(platform Platform, logger *slog.Logger) *Prober {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Prober{
		platform: platform,
		logger:   logger,
		run:      runCommand,
	}
}

// Probe runs the platform's diagnostic tool and returns the adapter name.
//
// The tool is not retried. A process that cannot be started is an error;
// a non-zero exit is tolerated as long as stdout still carries the device
// marker. The context bounds the child process; with no deadline a hung
// tool blocks until it exits.
func (p *Prober) Probe(ctx context.Context) (string, error) {
	cmd, ok := probes[p.platform]
	if !ok {
		return "", ErrUnsupportedPlatform
	}

	p.logger.Debug("running gpu probe",
		"platform", p.platform.String(),
		"command", cmd.name,
		"args", cmd.args,
	)

	output, err := p.run(ctx, cmd.name, cmd.args...)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("gpu: run %s: %w", cmd.name, err)
		}
		p.logger.Debug("gpu probe exited non-zero",
			"command", cmd.name,
			"exit_code", exitErr.ExitCode(),
		)
	}

	name, found := cmd.parse(output)
	if !found {
		if err != nil {
			return "", fmt.Errorf("%w (%s: %v)", ErrNoDevice, cmd.name, err)
		}
		return "", ErrNoDevice
	}
	return name, nil
}
