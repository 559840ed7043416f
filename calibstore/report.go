package calibstore

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cast"
)

// Report renders a human-readable summary of r: hardware profile,
// run duration, success count, a per-method table, and any failures
// called out separately.
func Report(r Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Calibration report (version %d)\n", r.Version)
	fmt.Fprintf(&b, "  hardware:  %s\n", describeHardware(r))
	fmt.Fprintf(&b, "  started:   %s\n", r.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "  completed: %s\n", r.CompletedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "  duration:  %s\n", r.CompletedAt.Sub(r.StartedAt))

	succeeded, failed := partitionResults(r.Methods)
	fmt.Fprintf(&b, "  methods:   %d succeeded, %d failed\n\n", len(succeeded), len(failed))

	if len(succeeded) > 0 {
		b.WriteString(renderMethodTable(succeeded))
		b.WriteString("\n")
	}
	if len(failed) > 0 {
		b.WriteString("Failures:\n")
		for _, key := range sortedKeys(failed) {
			fmt.Fprintf(&b, "  %s: %s\n", key, failed[key].FailureReason)
		}
	}

	return b.String()
}

func describeHardware(r Record) string {
	h := r.Hardware
	bits := "32-bit"
	if h.Is64Bit {
		bits = "64-bit"
	}
	return fmt.Sprintf("%s (%s, %d cores, %s), %.1f GiB, %s, %s, reference score %.2e",
		h.Machine, h.CPUDesc, h.CPUCount, bits, float64(h.MemoryBytes)/(1<<30), h.OSDesc, h.RuntimeVer, h.ReferenceScore)
}

func partitionResults(methods map[string]MethodResult) (succeeded, failed map[string]MethodResult) {
	succeeded = make(map[string]MethodResult)
	failed = make(map[string]MethodResult)
	for key, m := range methods {
		if m.Success {
			succeeded[key] = m
		} else {
			failed[key] = m
		}
	}
	return succeeded, failed
}

func sortedKeys(m map[string]MethodResult) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// renderMethodTable builds the per-method table from a loosely-typed
// row representation so fields sourced from different record
// versions (a float64 here, an int there) coerce uniformly via
// spf13/cast rather than needing a type switch per field.
func renderMethodTable(methods map[string]MethodResult) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tCLASS\tCONSTANT(ns/op)\tCONFIDENCE\tSAMPLES")
	for _, key := range sortedKeys(methods) {
		m := methods[key]
		row := map[string]any{
			"constant":   m.ConstantFactor,
			"confidence": m.Confidence,
			"samples":    m.Samples,
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%d\n",
			key, m.Class,
			cast.ToFloat64(row["constant"]),
			cast.ToFloat64(row["confidence"]),
			cast.ToInt(row["samples"]),
		)
	}
	w.Flush()
	return b.String()
}
