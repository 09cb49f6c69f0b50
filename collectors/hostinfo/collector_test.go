package hostinfo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/tinyland/lab/sysfetch/collectors"
)

type stubGPU struct {
	name   string
	err    error
	called bool
	ctx    context.Context
}

func (s *stubGPU) Probe(ctx context.Context) (string, error) {
	s.called = true
	s.ctx = ctx
	return s.name, s.err
}

type stubIP struct {
	ip  string
	err error
}

func (s *stubIP) LocalIP(context.Context) (string, error) {
	return s.ip, s.err
}

var fixedTime = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

// newTestCollector returns a Collector whose every query succeeds with
// realistic values. Tests override individual fields to inject failures.
func newTestCollector() *Collector {
	c := NewCollector(DefaultConfig(), nil)
	c.platformInfo = func(context.Context) (string, string, string, error) {
		return "ubuntu", "debian", "24.04", nil
	}
	c.kernelVersion = func(context.Context) (string, error) { return "6.8.0-45-generic", nil }
	c.hostname = func() (string, error) { return "atlas", nil }
	c.uptime = func(context.Context) (uint64, error) { return 90061, nil }
	c.goos = "linux"
	c.cpuInfo = func(context.Context) ([]cpu.InfoStat, error) {
		return []cpu.InfoStat{{ModelName: "AMD Ryzen 7 7840U w/ Radeon 780M Graphics"}}, nil
	}
	c.cpuCounts = func(context.Context, bool) (int, error) { return 16, nil }
	c.virtualMemory = func(context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: 8589934592, Used: 4294967296}, nil
	}
	c.lookupEnv = func(key string) (string, bool) {
		if key == "USER" {
			return "ada", true
		}
		return "", false
	}
	c.bootUptime = func() time.Duration { return 0 }
	c.gpu = &stubGPU{name: "AMD Radeon 780M"}
	c.ip = &stubIP{ip: "192.168.1.20"}
	c.now = func() time.Time { return fixedTime }
	return c
}

func TestCollect_AllFacts(t *testing.T) {
	result := newTestCollector().Collect(context.Background())

	require.NotNil(t, result)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, fixedTime, result.Timestamp)

	s := result.Snapshot
	assert.Equal(t, "Ubuntu", s.OSName)
	assert.Equal(t, "24.04", s.OSVersion)
	assert.Equal(t, "6.8.0-45-generic", s.KernelVersion)
	assert.Equal(t, "atlas", s.Hostname)
	assert.Equal(t, "ada", s.Username)
	assert.Equal(t, "1d 1h 1m", s.Uptime)
	assert.Equal(t, "AMD Ryzen 7 7840U w/ Radeon 780M Graphics", s.CPUModel)
	assert.Equal(t, 16, s.CPUCores)
	assert.Equal(t, uint64(8589934592), s.MemoryTotal)
	assert.Equal(t, uint64(4294967296), s.MemoryUsed)
	assert.Zero(t, s.DiskTotal)
	assert.Zero(t, s.DiskUsed)
	assert.Equal(t, "AMD Radeon 780M", s.GPUInfo)
	assert.Equal(t, "192.168.1.20", s.LocalIP)
}

func TestCollect_EverythingFails(t *testing.T) {
	boom := errors.New("boom")
	c := newTestCollector()
	c.platformInfo = func(context.Context) (string, string, string, error) { return "", "", "", boom }
	c.kernelVersion = func(context.Context) (string, error) { return "", boom }
	c.hostname = func() (string, error) { return "", boom }
	c.uptime = func(context.Context) (uint64, error) { return 0, boom }
	c.cpuInfo = func(context.Context) ([]cpu.InfoStat, error) { return nil, boom }
	c.cpuCounts = func(context.Context, bool) (int, error) { return 0, boom }
	c.virtualMemory = func(context.Context) (*mem.VirtualMemoryStat, error) { return nil, boom }
	c.lookupEnv = func(string) (string, bool) { return "", false }
	c.gpu = &stubGPU{err: boom}
	c.ip = &stubIP{err: boom}

	result := c.Collect(context.Background())

	require.NotNil(t, result)
	assert.True(t, result.Degraded())
	assert.Equal(t, collectors.EmptySnapshot(), result.Snapshot)
	assert.Len(t, result.Warnings, 10)
}

func TestCollect_UptimeFallback(t *testing.T) {
	c := newTestCollector()
	c.uptime = func(context.Context) (uint64, error) { return 0, errors.New("no uptime") }
	c.bootUptime = func() time.Duration { return 3661 * time.Second }

	result := c.Collect(context.Background())

	assert.Equal(t, "1h 1m", result.Snapshot.Uptime)
	assert.Equal(t, "atlas", result.Snapshot.Hostname)
	assert.Equal(t, []string{"uptime: no uptime"}, result.Warnings)
}

func TestCollect_OSNameFallsBackToOS(t *testing.T) {
	c := newTestCollector()
	c.goos = "freebsd"
	c.platformInfo = func(context.Context) (string, string, string, error) { return "", "", "", nil }
	c.kernelVersion = func(context.Context) (string, error) { return "", nil }
	c.uptime = func(context.Context) (uint64, error) { return 61, nil }

	s := c.Collect(context.Background()).Snapshot

	assert.Equal(t, "Freebsd", s.OSName)
	assert.Equal(t, collectors.Unknown, s.OSVersion)
	assert.Equal(t, collectors.Unknown, s.KernelVersion)
	assert.Equal(t, "atlas", s.Hostname)
	assert.Equal(t, "1m", s.Uptime)
}

func TestCollect_HostQueriesDegradeIndependently(t *testing.T) {
	denied := errors.New("open /sys/class/dmi/id/product_uuid: permission denied")

	tests := []struct {
		name    string
		breakQuery  func(c *Collector)
		warning string
		check   func(t *testing.T, s collectors.SystemSnapshot)
	}{
		{
			name: "platform",
			breakQuery: func(c *Collector) {
				c.platformInfo = func(context.Context) (string, string, string, error) { return "", "", "", denied }
			},
			warning: "os: " + denied.Error(),
			check: func(t *testing.T, s collectors.SystemSnapshot) {
				assert.Equal(t, collectors.Unknown, s.OSName)
				assert.Equal(t, collectors.Unknown, s.OSVersion)
			},
		},
		{
			name: "kernel",
			breakQuery: func(c *Collector) {
				c.kernelVersion = func(context.Context) (string, error) { return "", denied }
			},
			warning: "kernel: " + denied.Error(),
			check: func(t *testing.T, s collectors.SystemSnapshot) {
				assert.Equal(t, collectors.Unknown, s.KernelVersion)
			},
		},
		{
			name: "hostname",
			breakQuery: func(c *Collector) {
				c.hostname = func() (string, error) { return "", denied }
			},
			warning: "hostname: " + denied.Error(),
			check: func(t *testing.T, s collectors.SystemSnapshot) {
				assert.Equal(t, collectors.Unknown, s.Hostname)
			},
		},
		{
			name: "uptime",
			breakQuery: func(c *Collector) {
				c.uptime = func(context.Context) (uint64, error) { return 0, denied }
			},
			warning: "uptime: " + denied.Error(),
			check: func(t *testing.T, s collectors.SystemSnapshot) {
				assert.Equal(t, "0m", s.Uptime)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := newTestCollector().Collect(context.Background()).Snapshot

			c := newTestCollector()
			tt.breakQuery(c)
			result := c.Collect(context.Background())

			assert.Equal(t, []string{tt.warning}, result.Warnings)
			tt.check(t, result.Snapshot)

			got := result.Snapshot
			if tt.name != "platform" {
				assert.Equal(t, want.OSName, got.OSName)
				assert.Equal(t, want.OSVersion, got.OSVersion)
			}
			if tt.name != "kernel" {
				assert.Equal(t, want.KernelVersion, got.KernelVersion)
			}
			if tt.name != "hostname" {
				assert.Equal(t, want.Hostname, got.Hostname)
			}
			if tt.name != "uptime" {
				assert.Equal(t, want.Uptime, got.Uptime)
			}
		})
	}
}

func TestCollect_UsernameFromUSERNAME(t *testing.T) {
	c := newTestCollector()
	c.lookupEnv = func(key string) (string, bool) {
		if key == "USERNAME" {
			return "grace", true
		}
		return "", false
	}

	assert.Equal(t, "grace", c.Collect(context.Background()).Snapshot.Username)
}

func TestCollect_EmptyCPUDescriptor(t *testing.T) {
	c := newTestCollector()
	c.cpuInfo = func(context.Context) ([]cpu.InfoStat, error) { return []cpu.InfoStat{}, nil }

	result := c.Collect(context.Background())

	assert.Equal(t, collectors.Unknown, result.Snapshot.CPUModel)
	assert.Equal(t, 16, result.Snapshot.CPUCores)
	assert.Len(t, result.Warnings, 1)
}

func TestCollect_UsedAboveTotalKept(t *testing.T) {
	c := newTestCollector()
	c.virtualMemory = func(context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: 100, Used: 150}, nil
	}

	s := c.Collect(context.Background()).Snapshot

	assert.Equal(t, uint64(150), s.MemoryUsed)
	assert.Equal(t, uint64(100), s.MemoryTotal)
}

func TestCollect_GPUProbeDisabled(t *testing.T) {
	c := newTestCollector()
	c.config.GPUProbe = false
	stub := &stubGPU{name: "should not be used"}
	c.gpu = stub

	result := c.Collect(context.Background())

	assert.False(t, stub.called)
	assert.Equal(t, collectors.UnknownGPU, result.Snapshot.GPUInfo)
	assert.Empty(t, result.Warnings)
}

func TestCollect_ProbeTimeoutApplied(t *testing.T) {
	c := newTestCollector()
	c.config.ProbeTimeout = 2 * time.Second
	stub := &stubGPU{name: "GPU"}
	c.gpu = stub

	c.Collect(context.Background())

	require.True(t, stub.called)
	_, hasDeadline := stub.ctx.Deadline()
	assert.True(t, hasDeadline)
}

func TestCollect_NoProbeTimeoutByDefault(t *testing.T) {
	c := newTestCollector()
	stub := &stubGPU{name: "GPU"}
	c.gpu = stub

	c.Collect(context.Background())

	_, hasDeadline := stub.ctx.Deadline()
	assert.False(t, hasDeadline)
}

func TestParseProcUptime(t *testing.T) {
	secs, err := parseProcUptime([]byte("350735.47 234388.90\n"))
	require.NoError(t, err)
	assert.InDelta(t, 350735.47, secs, 0.001)

	_, err = parseProcUptime([]byte(""))
	assert.Error(t, err)

	_, err = parseProcUptime([]byte("abc 1.0"))
	assert.Error(t, err)

	_, err = parseProcUptime([]byte("-5 1.0"))
	assert.Error(t, err)
}
