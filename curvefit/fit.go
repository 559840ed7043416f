package curvefit

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/complexo-io/complexo/bench"
)

// Verify regresses results against every candidate class, selects the
// highest-R² winner, and — if claim is non-empty — reports whether
// the measured complexity matches it. claim is normalized via
// NormalizeClaim before comparison; an unrecognized claim is reported
// as provided but never matching.
func Verify(results []bench.Result, claim string) Verification {
	fits := make([]ClassFit, 0, len(candidateClasses))
	for _, class := range candidateClasses {
		if fit, ok := fitClass(class, results); ok {
			fits = append(fits, fit)
		}
	}

	best := ClassFit{RSquared: math.Inf(-1)}
	for _, f := range fits {
		if f.RSquared > best.RSquared {
			best = f
		}
	}

	normalizedClaim, claimOK := NormalizeClaim(claim)
	matches := false
	if claimOK && best.Class == normalizedClaim && best.RSquared >= 0.9 {
		matches = true
	}

	meanCV := meanCoefficientOfVariation(results)
	sampleFactor := math.Min(1, float64(len(results))/5)
	confidence := math.Max(0, best.RSquared) * (1 - meanCV) * sampleFactor
	if confidence < 0 {
		confidence = 0
	}

	return Verification{
		Results:        results,
		Fits:           fits,
		BestFit:        best.Class,
		Claim:          normalizedClaim,
		ClaimProvided:  claim != "",
		Matches:        matches,
		Confidence:     confidence,
		ConstantFactor: best.Coefficient,
	}
}

// fitClass regresses results against class's scaling transform through
// the origin: stat.LinearRegression with origin=true forces alpha to 0
// and returns beta as the class's constant factor; R² follows from
// stat.RSquared with the same alpha=0, beta=c pair.
func fitClass(class Class, results []bench.Result) (ClassFit, bool) {
	var xs, ys []float64
	for _, res := range results {
		x, ok := transform(class, res.Size)
		if !ok {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, float64(res.Mean.Nanoseconds()))
	}
	if len(xs) < 2 {
		return ClassFit{}, false
	}

	var sumXX float64
	for _, x := range xs {
		sumXX += x * x
	}
	if sumXX == 0 {
		return ClassFit{}, false
	}

	_, c := stat.LinearRegression(xs, ys, nil, true)
	r2 := stat.RSquared(xs, ys, nil, 0, c)
	return ClassFit{Class: class, Coefficient: c, RSquared: r2}, true
}

func meanCoefficientOfVariation(results []bench.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	var sum float64
	for _, r := range results {
		sum += r.CV
	}
	mean := sum / float64(len(results))
	if mean < 0 {
		return 0
	}
	if mean > 1 {
		return 1
	}
	return mean
}
