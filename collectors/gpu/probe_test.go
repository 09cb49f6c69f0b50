package gpu

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner returns a CommandRunner that records the invocation and
// replies with the given output and error.
func fakeRunner(output string, err error, gotName *string, gotArgs *[]string) CommandRunner {
	return func(_ context.Context, name string, args ...string) ([]byte, error) {
		if gotName != nil {
			*gotName = name
		}
		if gotArgs != nil {
			*gotArgs = args
		}
		return []byte(output), err
	}
}

func TestPlatformFor(t *testing.T) {
	tests := []struct {
		goos string
		want Platform
	}{
		{"windows", PlatformWindows},
		{"linux", PlatformLinux},
		{"darwin", PlatformMacOS},
		{"freebsd", PlatformOther},
		{"plan9", PlatformOther},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, PlatformFor(tt.goos))
		})
	}
}

func TestPlatform_String(t *testing.T) {
	assert.Equal(t, "windows", PlatformWindows.String())
	assert.Equal(t, "linux", PlatformLinux.String())
	assert.Equal(t, "macos", PlatformMacOS.String())
	assert.Equal(t, "other", PlatformOther.String())
	assert.Equal(t, "other", Platform(42).String())
}

func TestProber_CommandPerPlatform(t *testing.T) {
	tests := []struct {
		platform Platform
		wantName string
		wantArgs []string
	}{
		{PlatformWindows, "wmic", []string{"path", "win32_VideoController", "get", "name", "/format:value"}},
		{PlatformLinux, "lspci", []string{"-mm"}},
		{PlatformMacOS, "system_profiler", []string{"SPDisplaysDataType", "-json"}},
	}

	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			var name string
			var args []string
			p := NewProber(tt.platform, nil)
			p.run = fakeRunner("", nil, &name, &args)

			_, _ = p.Probe(context.Background())

			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestProber_UnsupportedPlatform(t *testing.T) {
	called := false
	p := NewProber(PlatformOther, nil)
	p.run = func(context.Context, string, ...string) ([]byte, error) {
		called = true
		return nil, nil
	}

	_, err := p.Probe(context.Background())

	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.False(t, called, "no process should be started on an unsupported platform")
}

func TestProber_LaunchFailure(t *testing.T) {
	p := NewProber(PlatformLinux, nil)
	p.run = fakeRunner("", exec.ErrNotFound, nil, nil)

	name, err := p.Probe(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, exec.ErrNotFound))
	assert.Empty(t, name)
}

func TestProber_NonZeroExitStillParsed(t *testing.T) {
	output := `00:02.0 "VGA compatible controller" "Intel Corporation" "UHD Graphics 620" -r07 "Lenovo" "Device 2258"` + "\n"
	p := NewProber(PlatformLinux, nil)
	p.run = fakeRunner(output, &exec.ExitError{}, nil, nil)

	name, err := p.Probe(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Intel Corporation UHD Graphics 620", name)
}

func TestProber_NonZeroExitUnparsable(t *testing.T) {
	p := NewProber(PlatformWindows, nil)
	p.run = fakeRunner("ERROR:\r\nDescription = Invalid class.\r\n", &exec.ExitError{}, nil, nil)

	_, err := p.Probe(context.Background())

	assert.ErrorIs(t, err, ErrNoDevice)
}

func TestProber_NoMarker(t *testing.T) {
	p := NewProber(PlatformMacOS, nil)
	p.run = fakeRunner(`{"SPDisplaysDataType":[]}`, nil, nil, nil)

	_, err := p.Probe(context.Background())

	assert.ErrorIs(t, err, ErrNoDevice)
}

func TestParseWMIC(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
		found  bool
	}{
		{
			name:   "single adapter",
			output: "\r\n\r\nName=NVIDIA GeForce RTX 3080\r\n\r\n",
			want:   "NVIDIA GeForce RTX 3080",
			found:  true,
		},
		{
			name:   "skips empty name",
			output: "Name=\r\nName=  Intel(R) UHD Graphics 630  \r\n",
			want:   "Intel(R) UHD Graphics 630",
			found:  true,
		},
		{
			name:   "first of several",
			output: "Name=AMD Radeon RX 6800\nName=Microsoft Basic Display Adapter\n",
			want:   "AMD Radeon RX 6800",
			found:  true,
		},
		{name: "no marker", output: "Caption=Something\n", found: false},
		{name: "empty", output: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := parseWMIC([]byte(tt.output))
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLspci(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
		found  bool
	}{
		{
			name: "vga controller",
			output: `00:00.0 "Host bridge" "Intel Corporation" "Xeon E3-1200 v6/7th Gen Core Processor Host Bridge/DRAM Registers" -r08 "Lenovo" "Device 2258"
00:02.0 "VGA compatible controller" "Intel Corporation" "UHD Graphics 620" -r07 "Lenovo" "Device 2258"
`,
			want:  "Intel Corporation UHD Graphics 620",
			found: true,
		},
		{
			name:   "3d controller",
			output: `01:00.0 "3D controller" "NVIDIA Corporation" "GP108M [GeForce MX150]" -ra1 "Lenovo" "Device 225e"` + "\n",
			want:   "NVIDIA Corporation GP108M [GeForce MX150]",
			found:  true,
		},
		{
			name:   "too few fields",
			output: `00:02.0 "VGA compatible controller" "Intel Corporation"` + "\n",
			found:  false,
		},
		{
			name:   "no graphics device",
			output: `00:1f.3 "Audio device" "Intel Corporation" "Sunrise Point-LP HD Audio" -r21 "Lenovo" "Device 2258"` + "\n",
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := parseLspci([]byte(tt.output))
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSystemProfiler(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
		found  bool
	}{
		{
			name: "decoded report",
			output: `{
  "SPDisplaysDataType" : [
    {
      "_name" : "Apple M2 Pro",
      "spdisplays_ndrvs" : [
        { "_name" : "Color LCD" }
      ],
      "sppci_model" : "Apple M2 Pro"
    }
  ]
}`,
			want:  "Apple M2 Pro",
			found: true,
		},
		{
			name:   "truncated output falls back to key scan",
			output: "{\n  \"SPDisplaysDataType\" : [\n    {\n      \"_name\" : \"AMD Radeon Pro 5500M\",\n      \"spdisplays_",
			want:   "AMD Radeon Pro 5500M",
			found:  true,
		},
		{
			name:   "no adapters",
			output: `{"SPDisplaysDataType" : []}`,
			found:  false,
		},
		{
			name:   "garbage",
			output: "system_profiler: command failed",
			found:  false,
		},
		{
			name:   "unterminated name",
			output: `{"SPDisplaysDataType" : [{"_name" : "Apple`,
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := parseSystemProfiler([]byte(tt.output))
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}
