package system

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// lowMemoryBytes is the threshold below which sampling parallelism is
// halved to leave headroom for the host editor process.
const lowMemoryBytes = 512 * 1024 * 1024

// SampleWorkers picks a goroutine count for the preview sampler based on
// the machine's logical CPUs and available memory. Never returns less
// than 1.
func SampleWorkers() int {
	workers, err := cpu.Counts(true)
	if err != nil || workers < 1 {
		workers = runtime.NumCPU()
	}

	if vm, err := mem.VirtualMemory(); err == nil && vm.Available < lowMemoryBytes {
		workers /= 2
	}

	if workers < 1 {
		workers = 1
	}
	return workers
}

// MemoryReport formats the current memory pressure for the CLI stats
// output.
func MemoryReport() string {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return "memory: unavailable"
	}

	return fmt.Sprintf("memory: %.1f%% used (%.0f MB available)",
		vm.UsedPercent, float64(vm.Available)/1024/1024)
}
