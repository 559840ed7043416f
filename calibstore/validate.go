package calibstore

import (
	"github.com/complexo-io/complexo/errs"
)

// validateRecord performs the staged checks a Record must pass before
// Store.Save writes it: version first (cheap, catches a caller
// constructing the zero value), then hardware identity (the store is
// keyed by it), then timestamps.
func validateRecord(r Record) error {
	if err := validateVersion(r); err != nil {
		return err
	}
	if err := validateHardware(r); err != nil {
		return err
	}
	if err := validateTimestamps(r); err != nil {
		return err
	}
	return nil
}

func validateVersion(r Record) error {
	if r.Version <= 0 {
		return errs.InputInvalid.New("calibration record version must be positive")
	}
	return nil
}

func validateHardware(r Record) error {
	h := r.Hardware
	if h.Machine == "" && h.CPUDesc == "" && h.OSDesc == "" && h.MemoryBytes == 0 {
		return errs.InputInvalid.New("calibration record has an empty hardware profile")
	}
	return nil
}

func validateTimestamps(r Record) error {
	if r.StartedAt.IsZero() || r.CompletedAt.IsZero() {
		return errs.InputInvalid.New("calibration record is missing started_at or completed_at")
	}
	if r.CompletedAt.Before(r.StartedAt) {
		return errs.InputInvalid.New("calibration record completed_at precedes started_at")
	}
	return nil
}
