package collectors

// SampleSnapshot returns a fixed, fully populated snapshot for demos and
// UI testing. Disk stays zero as it does for live collection.
func SampleSnapshot() SystemSnapshot {
	return SystemSnapshot{
		OSName:        "Rocky",
		OSVersion:     "10.1",
		KernelVersion: "6.12.0-55.el10.x86_64",
		Hostname:      "yoga",
		Username:      "jess",
		Uptime:        "1d 2h 14m",
		CPUModel:      "Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz",
		CPUCores:      8,
		MemoryTotal:   16_535_609_344,
		MemoryUsed:    4_831_838_208,
		GPUInfo:       "Intel Corporation UHD Graphics 620",
		LocalIP:       "192.168.1.100",
	}
}
