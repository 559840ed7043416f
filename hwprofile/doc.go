// Package hwprofile captures a best-effort description of the
// machine a calibration run executed on: CPU model, total memory, and
// OS description. Capture never fails calibration outright — any
// per-field gopsutil error folds into an "unknown" placeholder and a
// warning through the Progress interface, consistent with this
// codebase's policy that only I/O and explicit cancellation are hard
// errors.
//
// Grounded on the teacher's dijkstra/types.go DefaultOptions shape: a
// single factory function that returns one populated value, rather
// than a builder or multi-step constructor.
package hwprofile
