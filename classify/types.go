package classify

import "github.com/complexo-io/complexo/variable"

// Form is the coarse asymptotic shape a Classification reduces an
// expression to, totally ordered by growth rate.
type Form int

const (
	FormConstant Form = iota
	FormLogarithmic
	FormPolynomial
	FormPolyLog
	FormExponential
	FormFactorial
	// FormUnknown marks an expression whose growth the classifier could
	// not reduce to one of the above shapes (e.g. any SpecialFunction,
	// or an expression variant Classify does not recognise).
	FormUnknown
)

func (f Form) String() string {
	switch f {
	case FormConstant:
		return "constant"
	case FormLogarithmic:
		return "logarithmic"
	case FormPolynomial:
		return "polynomial"
	case FormPolyLog:
		return "polylog"
	case FormExponential:
		return "exponential"
	case FormFactorial:
		return "factorial"
	default:
		return "unknown"
	}
}

// Classification is the result of Classify: a dominant Form over a
// chosen Variable, with the shape parameters needed to reconstruct a
// canonical expression or compare two classifications asymptotically.
//
//   - PolynomialDegree is the leading exponent of Variable (0 for a pure
//     constant or logarithmic form).
//   - LogExponent is the exponent on log(Variable) (0 when no log
//     factor is present; set for both FormLogarithmic and FormPolyLog).
//   - ExponentialBase is the base of an exponential form (unused
//     otherwise).
//   - Coefficient is the leading numeric multiplier, kept for
//     diagnostics; asymptotic comparisons ignore it.
//   - Confidence in [0,1] drops below 1 whenever the classifier had to
//     approximate (e.g. collapsing a super-exponential ExpOf into
//     FormExponential, or picking a side of an incomparable max/min).
type Classification struct {
	Form             Form
	Variable         variable.Variable
	PolynomialDegree float64
	LogExponent      float64
	ExponentialBase  float64
	Coefficient      float64
	Confidence       float64
}
