package refine

import "github.com/complexo-io/complexo/expr"

// BoundKind selects which direction Engine.VerifyBound checks a
// candidate against: upper bound, lower bound, or a tight two-sided
// band.
type BoundKind int

const (
	BoundUpper BoundKind = iota
	BoundLower
	BoundTight
)

func (k BoundKind) String() string {
	switch k {
	case BoundUpper:
		return "upper"
	case BoundLower:
		return "lower"
	case BoundTight:
		return "tight"
	default:
		return "unknown"
	}
}

// StageResult records one refinement stage's candidate, confidence
// contribution, and diagnostics.
type StageResult struct {
	Name        string
	Candidate   expr.Expression
	Confidence  float64
	Diagnostics []string
}

// RatioSample is one point of the inductive-step sample grid:
// recurrence-work(n) / candidate(n) at a given n.
type RatioSample struct {
	N     float64
	Ratio float64
}

// InductionResult is stage 4's outcome.
type InductionResult struct {
	BaseCasePassed bool
	Samples        []RatioSample
	TrendSlope     float64
	Passed         bool
	Diagnostics    []string
}

// Result is the refinement engine's final output.
type Result struct {
	Original       expr.Expression
	Refined        expr.Expression
	Stages         []StageResult
	Verification   InductionResult
	Confidence     float64
	ReviewRequired bool
	Diagnostics    []string
}
