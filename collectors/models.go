package collectors

// Fallback literals substituted for facts that could not be determined.
const (
	Unknown    = "Unknown"
	UnknownGPU = "Unknown GPU"
	UnknownIP  = "Unknown IP"
)

// SystemSnapshot is a single, static capture of host facts taken at startup.
// It is built once and never mutated afterwards.
type SystemSnapshot struct {
	OSName        string `json:"os_name"`
	OSVersion     string `json:"os_version"`
	KernelVersion string `json:"kernel_version"`
	Hostname      string `json:"hostname"`
	Username      string `json:"username"`

	// Uptime is pre-formatted ("1d 2h 3m").
	Uptime string `json:"uptime"`

	CPUModel string `json:"cpu_model"`
	CPUCores int    `json:"cpu_cores"`

	// MemoryUsed is expected to be at most MemoryTotal, but source data
	// is not checked and consumers must cope with either order.
	MemoryTotal uint64 `json:"memory_total"`
	MemoryUsed  uint64 `json:"memory_used"`

	// Disk usage is not queried; both fields stay zero.
	DiskTotal uint64 `json:"disk_total"`
	DiskUsed  uint64 `json:"disk_used"`

	GPUInfo string `json:"gpu_info"`
	LocalIP string `json:"local_ip"`
}

// EmptySnapshot returns a snapshot where every fact holds its fallback value.
func EmptySnapshot() SystemSnapshot {
	return SystemSnapshot{
		OSName:        Unknown,
		OSVersion:     Unknown,
		KernelVersion: Unknown,
		Hostname:      Unknown,
		Username:      Unknown,
		Uptime:        "0m",
		CPUModel:      Unknown,
		GPUInfo:       UnknownGPU,
		LocalIP:       UnknownIP,
	}
}

// MemoryPercent returns the memory usage as a whole percentage.
func (s SystemSnapshot) MemoryPercent() int {
	return UsagePercent(s.MemoryUsed, s.MemoryTotal)
}

// DiskPercent returns the disk usage as a whole percentage.
func (s SystemSnapshot) DiskPercent() int {
	return UsagePercent(s.DiskUsed, s.DiskTotal)
}

// UsagePercent returns used/total*100 rounded toward zero. A zero total
// yields 0. The result is not clamped, so used > total gives more than 100.
func UsagePercent(used, total uint64) int {
	if total == 0 {
		return 0
	}
	return int(float64(used) / float64(total) * 100)
}
