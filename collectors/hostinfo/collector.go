// Package hostinfo builds the one-time SystemSnapshot from host queries and
// external probes. Every query is guarded on its own: a failure replaces
// that single fact with its fallback literal and collection carries on.
package hostinfo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"gitlab.com/tinyland/lab/sysfetch/collectors"
	"gitlab.com/tinyland/lab/sysfetch/collectors/gpu"
	"gitlab.com/tinyland/lab/sysfetch/collectors/netinfo"
	"gitlab.com/tinyland/lab/sysfetch/internal/format"
)

// Config controls the optional and external parts of a collection run.
type Config struct {
	// GPUProbe enables the external GPU diagnostic process. When false the
	// GPU fact is reported as collectors.UnknownGPU without running anything.
	GPUProbe bool

	// ProbeTimeout bounds each external probe. Zero means no timeout: a
	// hung diagnostic tool stalls collection until it exits.
	ProbeTimeout time.Duration

	// IPProbeTarget is the address routed towards when looking up the
	// local IP. Empty uses netinfo.DefaultProbeTarget.
	IPProbeTarget string
}

// DefaultConfig returns a Config with the GPU probe on and no timeout.
func DefaultConfig() Config {
	return Config{
		GPUProbe:      true,
		IPProbeTarget: netinfo.DefaultProbeTarget,
	}
}

// gpuProber names the adapter of the primary graphics device.
type gpuProber interface {
	Probe(ctx context.Context) (string, error)
}

// ipResolver looks up the primary outbound interface address.
type ipResolver interface {
	LocalIP(ctx context.Context) (string, error)
}

// Collector implements collectors.Collector for the local host.
type Collector struct {
	config Config
	logger *slog.Logger

	gpu gpuProber
	ip  ipResolver

	// Overridable host queries for testing.
	platformInfo  func(ctx context.Context) (platform, family, version string, err error)
	kernelVersion func(ctx context.Context) (string, error)
	hostname      func() (string, error)
	uptime        func(ctx context.Context) (uint64, error)
	goos          string
	cpuInfo       func(ctx context.Context) ([]cpu.InfoStat, error)
	cpuCounts     func(ctx context.Context, logical bool) (int, error)
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	lookupEnv     func(key string) (string, bool)
	bootUptime    func() time.Duration
	now           func() time.Time
}

// NewCollector creates a Collector for the running host.
// If logger is nil, a no-op logger is used.
func NewCollector(config Config, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Collector{
		config:        config,
		logger:        logger,
		gpu:           gpu.NewProber(gpu.HostPlatform(), logger),
		ip:            netinfo.NewResolver(config.IPProbeTarget, logger),
		platformInfo:  host.PlatformInformationWithContext,
		kernelVersion: host.KernelVersionWithContext,
		hostname:      os.Hostname,
		uptime:        host.UptimeWithContext,
		goos:          runtime.GOOS,
		cpuInfo:       cpu.InfoWithContext,
		cpuCounts:     cpu.CountsWithContext,
		virtualMemory: mem.VirtualMemoryWithContext,
		lookupEnv:     os.LookupEnv,
		bootUptime:    bootUptime,
		now:           time.Now,
	}
}

// Collect queries the host once. It never fails: each fact that cannot be
// determined is replaced by its fallback and listed in Warnings.
func (c *Collector) Collect(ctx context.Context) *collectors.CollectResult {
	snap := collectors.EmptySnapshot()
	var warnings []string

	degrade := func(fact string, err error) {
		c.logger.Warn("fact unavailable, using fallback", "fact", fact, "error", err)
		warnings = append(warnings, fmt.Sprintf("%s: %v", fact, err))
	}

	c.collectHost(ctx, &snap, degrade)
	c.collectUser(&snap, degrade)
	c.collectCPU(ctx, &snap, degrade)
	c.collectMemory(ctx, &snap, degrade)
	c.collectGPU(ctx, &snap, degrade)
	c.collectLocalIP(ctx, &snap, degrade)

	c.logger.Debug("snapshot collected",
		"os", snap.OSName,
		"kernel", snap.KernelVersion,
		"cpu", snap.CPUModel,
		"cores", snap.CPUCores,
		"memory_total", humanize.IBytes(snap.MemoryTotal),
		"memory_used", humanize.IBytes(snap.MemoryUsed),
		"gpu", snap.GPUInfo,
		"local_ip", snap.LocalIP,
		"warnings", len(warnings),
	)

	return &collectors.CollectResult{
		Timestamp: c.now(),
		Snapshot:  snap,
		Warnings:  warnings,
	}
}

func (c *Collector) collectHost(ctx context.Context, snap *collectors.SystemSnapshot, degrade func(string, error)) {
	if platform, _, version, err := c.platformInfo(ctx); err != nil {
		degrade("os", err)
	} else {
		if platform == "" {
			platform = c.goos
		}
		snap.OSName = orUnknown(format.TitleCase(platform))
		snap.OSVersion = orUnknown(version)
	}

	if kernel, err := c.kernelVersion(ctx); err != nil {
		degrade("kernel", err)
	} else {
		snap.KernelVersion = orUnknown(kernel)
	}

	if name, err := c.hostname(); err != nil {
		degrade("hostname", err)
	} else {
		snap.Hostname = orUnknown(name)
	}

	if secs, err := c.uptime(ctx); err != nil {
		degrade("uptime", err)
		snap.Uptime = format.FormatUptimeDuration(c.bootUptime())
	} else {
		snap.Uptime = format.FormatUptime(secs)
	}
}

func (c *Collector) collectUser(snap *collectors.SystemSnapshot, degrade func(string, error)) {
	for _, key := range []string{"USER", "USERNAME"} {
		if v, ok := c.lookupEnv(key); ok && v != "" {
			snap.Username = v
			return
		}
	}
	degrade("username", fmt.Errorf("neither USER nor USERNAME is set"))
}

func (c *Collector) collectCPU(ctx context.Context, snap *collectors.SystemSnapshot, degrade func(string, error)) {
	infos, err := c.cpuInfo(ctx)
	switch {
	case err != nil:
		degrade("cpu model", err)
	case len(infos) == 0 || infos[0].ModelName == "":
		degrade("cpu model", fmt.Errorf("no cpu descriptor"))
	default:
		snap.CPUModel = infos[0].ModelName
	}

	cores, err := c.cpuCounts(ctx, true)
	if err != nil {
		degrade("cpu cores", err)
		return
	}
	if cores > 0 {
		snap.CPUCores = cores
	}
}

func (c *Collector) collectMemory(ctx context.Context, snap *collectors.SystemSnapshot, degrade func(string, error)) {
	vm, err := c.virtualMemory(ctx)
	if err != nil || vm == nil {
		if err == nil {
			err = fmt.Errorf("no memory stats")
		}
		degrade("memory", err)
		return
	}
	snap.MemoryTotal = vm.Total
	snap.MemoryUsed = vm.Used
}

func (c *Collector) collectGPU(ctx context.Context, snap *collectors.SystemSnapshot, degrade func(string, error)) {
	if !c.config.GPUProbe {
		c.logger.Debug("gpu probe disabled")
		return
	}

	probeCtx, cancel := c.probeContext(ctx)
	defer cancel()

	name, err := c.gpu.Probe(probeCtx)
	if err != nil {
		degrade("gpu", err)
		return
	}
	snap.GPUInfo = name
}

func (c *Collector) collectLocalIP(ctx context.Context, snap *collectors.SystemSnapshot, degrade func(string, error)) {
	probeCtx, cancel := c.probeContext(ctx)
	defer cancel()

	ip, err := c.ip.LocalIP(probeCtx)
	if err != nil {
		degrade("local ip", err)
		return
	}
	snap.LocalIP = ip
}

// probeContext applies the configured probe timeout, if any.
func (c *Collector) probeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.config.ProbeTimeout > 0 {
		return context.WithTimeout(ctx, c.config.ProbeTimeout)
	}
	return context.WithCancel(ctx)
}

func orUnknown(s string) string {
	if s == "" {
		return collectors.Unknown
	}
	return s
}

// Compile-time interface compliance check.
var _ collectors.Collector = (*Collector)(nil)
