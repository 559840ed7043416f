// Package bench implements the micro-benchmark runner: warmup,
// ops-per-iteration calibration, a measurement loop with IQR outlier
// removal, and per-size summary statistics, for each of three presets
// (Quick, Standard, Thorough).
//
// Grounded on the teacher's tsp/bb.go soft-deadline pattern
// (deadlineCheck: a sparse, counted check rather than a wall-clock
// check on every hot-loop step) adapted from "check wall clock every
// 4096 node events" to "check min_iter_time after the single
// calibration sample, then run the measurement loop at the calibrated
// batch size" — the same idea of paying the timing-check cost rarely,
// applied to a coarser-grained loop.
package bench
