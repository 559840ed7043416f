package hwprofile

import (
	"crypto/sha1"
	"fmt"
	"time"
)

// Profile describes the hardware, OS, and runtime a calibration run
// executed on. Every string/numeric field falls back to "unknown"/0
// rather than being left zero-valued when gopsutil cannot report it;
// see Capture.
type Profile struct {
	Machine        string    `yaml:"machine"`
	CPUDesc        string    `yaml:"cpu_desc"`
	CPUCount       int       `yaml:"cpu_count"`
	MemoryBytes    uint64    `yaml:"memory_bytes"`
	OSDesc         string    `yaml:"os_desc"`
	RuntimeVer     string    `yaml:"runtime_ver"`
	Is64Bit        bool      `yaml:"is_64bit"`
	ReferenceScore float64   `yaml:"reference_score"`
	CapturedAt     time.Time `yaml:"captured_at"`
}

// ID derives a stable, filesystem-safe identifier for this profile,
// used as the calibration store's per-profile filename suffix. It is
// built from the machine name, CPU count, and the capture date (day
// granularity, not time of day): repeated captures on the same machine
// on the same day share an id, while a recalibration the next day gets
// a fresh one rather than silently overwriting the prior day's record.
func (p Profile) ID() string {
	date := p.CapturedAt.Format("2006-01-02")
	sum := sha1.Sum([]byte(fmt.Sprintf("%s|%d|%s", p.Machine, p.CPUCount, date)))
	return fmt.Sprintf("%x", sum)[:16]
}

const unknown = "unknown"
