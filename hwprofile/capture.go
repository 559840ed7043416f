package hwprofile

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/complexo-io/complexo/progress"
)

// Capture gathers a best-effort Profile. A failure reading any one
// field never fails the whole capture: the field falls back to
// "unknown" (or 0 for numeric fields) and prog receives a Warning.
// prog may be nil, in which case warnings are discarded.
func Capture(ctx context.Context, prog progress.Progress) (Profile, error) {
	if prog == nil {
		prog = progress.Null{}
	}

	cpuDesc, cpuCount := captureCPU(ctx, prog)

	return Profile{
		Machine:        captureMachine(prog),
		CPUDesc:        cpuDesc,
		CPUCount:       cpuCount,
		MemoryBytes:    captureMemory(ctx, prog),
		OSDesc:         captureOS(ctx, prog),
		RuntimeVer:     runtime.Version(),
		Is64Bit:        is64Bit(),
		ReferenceScore: referenceScore(),
		CapturedAt:     time.Now(),
	}, nil
}

func captureMachine(prog progress.Progress) string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		prog.Warning(fmt.Sprintf("hwprofile: hostname unavailable: %v", err))
		return unknown
	}
	return name
}

func captureCPU(ctx context.Context, prog progress.Progress) (string, int) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil || len(infos) == 0 {
		prog.Warning(fmt.Sprintf("hwprofile: cpu info unavailable: %v", err))
		return unknown, runtime.NumCPU()
	}
	info := infos[0]
	if info.ModelName == "" {
		prog.Warning("hwprofile: cpu model name empty")
		return unknown, runtime.NumCPU()
	}
	desc := fmt.Sprintf("%s (%d cores @ %.0fMHz)", info.ModelName, info.Cores, info.Mhz)

	counts, err := cpu.CountsWithContext(ctx, true)
	if err != nil || counts == 0 {
		return desc, runtime.NumCPU()
	}
	return desc, counts
}

func captureMemory(ctx context.Context, prog progress.Progress) uint64 {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil || vm == nil {
		prog.Warning(fmt.Sprintf("hwprofile: memory info unavailable: %v", err))
		return 0
	}
	return vm.Total
}

func captureOS(ctx context.Context, prog progress.Progress) string {
	info, err := host.InfoWithContext(ctx)
	if err != nil || info == nil {
		prog.Warning(fmt.Sprintf("hwprofile: host info unavailable: %v", err))
		return unknown
	}
	return fmt.Sprintf("%s %s (%s)", info.Platform, info.PlatformVersion, info.OS)
}

func is64Bit() bool {
	return strconv.IntSize == 64
}

const referenceIterations = 20_000_000

// referenceScore runs a fixed-size, purely sequential floating-point
// workload and reports iterations per second — a coarse throughput
// figure recorded in the Profile for comparing machines; no lookup in
// the module rescales constant factors by it.
func referenceScore() float64 {
	start := time.Now()
	x := 1.0000001
	for i := 0; i < referenceIterations; i++ {
		x = x*1.0000001 + 1e-12
	}
	elapsed := time.Since(start)
	if elapsed <= 0 {
		return 0
	}
	// x is folded into the result so the loop can't be discarded as
	// dead code by a future, more aggressive compiler.
	return float64(referenceIterations)/elapsed.Seconds() + (x - x)
}
