// Package sysmon provides system-wide CPU and memory usage sampling for the
// visualizer's status header.
package sysmon

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system and process resource usage.
type Stats struct {
	CPUPercent float64 // system-wide, 0.0 .. 100.0
	MemPercent float64 // system-wide, 0.0 .. 100.0
	HeapBytes  uint64  // this process, bytes of live heap
}

// Sample collects a single resource usage snapshot.
// CPU uses interval=0 (delta since last call). System-wide figures fall back
// to zero on error; the heap figure always comes from the runtime.
func Sample() Stats {
	var s Stats

	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}

	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s.HeapBytes = ms.HeapAlloc

	return s
}
