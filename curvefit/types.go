package curvefit

import "github.com/complexo-io/complexo/bench"

// Class is one of the canonical candidate complexity classes
// curvefit regresses benchmark data against.
type Class string

const (
	ClassConstant      Class = "O(1)"
	ClassLogarithmic   Class = "O(log n)"
	ClassLinear        Class = "O(n)"
	ClassLinearithmic  Class = "O(n log n)"
	ClassQuadratic     Class = "O(n^2)"
	ClassCubic         Class = "O(n^3)"
	ClassExponential   Class = "O(2^n)"
)

// candidateClasses is the fixed regression order; Exponential is
// tried last and only kept as the winner if no polynomial/log class
// fits better, since its transform overflows for large n and a few
// huge values can otherwise dominate the R² comparison.
var candidateClasses = []Class{
	ClassConstant,
	ClassLogarithmic,
	ClassLinear,
	ClassLinearithmic,
	ClassQuadratic,
	ClassCubic,
	ClassExponential,
}

// ClassFit is one candidate class's regression outcome.
type ClassFit struct {
	Class       Class
	Coefficient float64 // c in y = c·x_transformed
	RSquared    float64
}

// Verification is curvefit's full result: the best-fit class plus
// every candidate's fit, and — when a claim was supplied — whether
// the measured complexity matches it.
type Verification struct {
	Results        []bench.Result
	Fits           []ClassFit
	BestFit        Class
	Claim          Class
	ClaimProvided  bool
	Matches        bool
	Confidence     float64
	ConstantFactor float64 // best-fit coefficient, ns per operation
}
