package akrabazzi

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/complexo-io/complexo/errs"
)

// Term is one aᵢ·bᵢ^p summand of the critical-exponent equation
// Σ aᵢ·bᵢ^p = 1; aᵢ > 0, bᵢ ∈ (0,1).
type Term struct {
	A float64
	B float64
}

const (
	newtonTol     = 1e-10 // |F(p)| and |Δp| convergence threshold
	newtonMaxIter = 100   // Stage 1 iteration cap before falling back to Brent
	brentMaxIter  = 200
	bracketStart  = 1.0 // initial upper end of the Brent bracket [0, hi], doubled until F changes sign
	bracketMax    = 1 << 20
)

// CriticalExponentResult is the unique p solving Σ aᵢ·bᵢ^p = 1, plus
// the method that found it and an error estimate from the final step.
type CriticalExponentResult struct {
	P         float64
	Method    string // "newton" or "brent"
	ErrorEst  float64
	Residual  float64
}

// f evaluates F(p) = Σ aᵢ·bᵢ^p − 1.
func f(terms []Term, p float64) float64 {
	sum := 0.0
	for _, t := range terms {
		sum += t.A * math.Pow(t.B, p)
	}
	return sum - 1
}

// fPrime evaluates F'(p) = Σ aᵢ·bᵢ^p·ln(bᵢ).
func fPrime(terms []Term, p float64) float64 {
	sum := 0.0
	for _, t := range terms {
		sum += t.A * math.Pow(t.B, p) * math.Log(t.B)
	}
	return sum
}

// SolveCriticalExponent finds the unique p with Σ aᵢ·bᵢ^p = 1 for
// terms satisfying aᵢ > 0, bᵢ ∈ (0,1). F is strictly monotone
// decreasing in p, so the root is unique whenever Σaᵢ >= 1 (true for
// Akra-Bazzi-eligible recurrences, which always have at least one
// term with aᵢ >= 1 overall or the theorem wouldn't apply in the first
// place — callers pass Akra-Bazzi-validated terms).
//
// Stage 1: Newton-Raphson from p0 = 0.
// Stage 2: on divergence or a non-convergent iteration cap, bracket
// the root by doubling and fall back to Brent's method.
func SolveCriticalExponent(terms []Term) (CriticalExponentResult, error) {
	if len(terms) == 0 {
		return CriticalExponentResult{}, errs.InputInvalid.New("critical-exponent solver received no terms")
	}
	for _, t := range terms {
		if t.A <= 0 || t.B <= 0 || t.B >= 1 {
			return CriticalExponentResult{}, errs.InputInvalid.New("critical-exponent term outside (a>0, b in (0,1))")
		}
	}

	if p, errEst, ok := newtonSolve(terms); ok {
		return CriticalExponentResult{P: p, Method: "newton", ErrorEst: errEst, Residual: f(terms, p)}, nil
	}

	lo, hi, err := bracket(terms)
	if err != nil {
		return CriticalExponentResult{}, err
	}
	p, err := brentSolve(terms, lo, hi)
	if err != nil {
		return CriticalExponentResult{}, err
	}
	return CriticalExponentResult{P: p, Method: "brent", ErrorEst: newtonTol, Residual: f(terms, p)}, nil
}

// newtonSolve runs Newton-Raphson from p=0, reporting ok=false if it
// fails to converge within newtonMaxIter iterations or the derivative
// vanishes (a stationary point Newton cannot step past).
func newtonSolve(terms []Term) (p, errEst float64, ok bool) {
	p = 0
	for iter := 0; iter < newtonMaxIter; iter++ {
		fp := f(terms, p)
		dfp := fPrime(terms, p)
		if dfp == 0 {
			return 0, 0, false
		}
		delta := fp / dfp
		next := p - delta
		if math.Abs(f(terms, next)) < newtonTol && math.Abs(next-p) < newtonTol {
			return next, math.Abs(next - p), true
		}
		p = next
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return 0, 0, false
		}
	}
	return 0, 0, false
}

// coefficientSum returns Σaᵢ via gonum/floats, the quantity that
// pins f(0) = Σaᵢ−1 and therefore which side of p=0 the bracket search
// must expand from.
func coefficientSum(terms []Term) float64 {
	as := make([]float64, len(terms))
	for i, t := range terms {
		as[i] = t.A
	}
	return floats.Sum(as)
}

// bracket finds [lo, hi] with f(lo) >= 0 >= f(hi) by doubling hi from
// bracketStart, since f(0) = Σaᵢ−1 >= 0 and f is strictly decreasing
// to −1 as p -> +infinity.
func bracket(terms []Term) (lo, hi float64, err error) {
	lo = 0
	if coefficientSum(terms)-1 < 0 {
		// Terms don't satisfy the Akra-Bazzi precondition Σaᵢ >= 1; the
		// caller should not have reached here, but fail explicitly
		// rather than search a bracket that cannot exist on this side.
		return 0, 0, errs.NumericalFailure.New("critical-exponent bracket: F(0) < 0")
	}
	width := bracketStart
	for width <= bracketMax {
		if f(terms, width) <= 0 {
			return lo, width, nil
		}
		width *= 2
	}
	return 0, 0, errs.NumericalFailure.New("critical-exponent bracket not found within bound")
}

// brentSolve is a standard Brent root-finder combining bisection with
// secant/inverse-quadratic interpolation, used when Newton diverges.
func brentSolve(terms []Term, a, b float64) (float64, error) {
	fa, fb := f(terms, a), f(terms, b)
	if fa*fb > 0 {
		return 0, errs.NumericalFailure.New("critical-exponent Brent bracket does not change sign")
	}
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}
	c, fc := a, fa
	mflag := true
	var d float64

	for iter := 0; iter < brentMaxIter; iter++ {
		if math.Abs(fb) < newtonTol || math.Abs(b-a) < newtonTol {
			return b, nil
		}
		var s float64
		if fa != fc && fb != fc {
			// Inverse quadratic interpolation.
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant.
			s = b - fb*(b-a)/(fb-fa)
		}

		cond := s < (3*a+b)/4 || s > b
		if (3*a+b)/4 > b {
			cond = s < b || s > (3*a+b)/4
		}
		useBisection := cond ||
			(mflag && math.Abs(s-b) >= math.Abs(b-c)/2) ||
			(!mflag && math.Abs(s-b) >= math.Abs(c-d)/2)

		if useBisection {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}

		fs := f(terms, s)
		d = c
		c, fc = b, fb
		if fa*fs < 0 {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}
		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}
	return 0, errs.NumericalFailure.New("Brent's method did not converge within iteration cap")
}
