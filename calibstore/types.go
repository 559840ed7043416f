package calibstore

import (
	"time"

	"github.com/complexo-io/complexo/hwprofile"
)

// RecordVersion is the current calibration file format version.
const RecordVersion = 1

// MethodResult is one calibrated method's constant-factor estimate,
// keyed by "TypeName.MethodName" in Record.Methods.
type MethodResult struct {
	Class          string  `yaml:"class"`
	ConstantFactor float64 `yaml:"constant_factor_ns"`
	Confidence     float64 `yaml:"confidence"`
	Samples        int     `yaml:"samples"`
	Success        bool    `yaml:"success"`
	FailureReason  string  `yaml:"failure_reason,omitempty"`
}

// Record is one complete calibration run, persisted as a single YAML
// file keyed by its hardware profile's ID.
type Record struct {
	Version     int                     `yaml:"version"`
	Hardware    hwprofile.Profile       `yaml:"hardware"`
	StartedAt   time.Time               `yaml:"started_at"`
	CompletedAt time.Time               `yaml:"completed_at"`
	Methods     map[string]MethodResult `yaml:"methods"`
}

// MethodKey joins a type and method name into a Record.Methods key.
func MethodKey(typeName, methodName string) string {
	return typeName + "." + methodName
}
