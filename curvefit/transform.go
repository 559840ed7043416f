package curvefit

import "math"

// maxExponentialSize is the largest input size the exponential
// candidate is evaluated for; larger sizes skip the exponential
// candidate rather than feed values above 2^62 into its fit.
const maxExponentialSize = 62

// ScalingFactor exposes transform for calibstore's lookup layer,
// which combines a stored per-operation constant factor with a
// claimed class's scaling function to estimate a running time at an
// arbitrary input size.
func ScalingFactor(class Class, size int) (float64, bool) {
	return transform(class, size)
}

// transform maps an input size to class's predicted scaling factor.
// The bool is false when the class cannot be evaluated at this size
// (exponential beyond maxExponentialSize).
func transform(class Class, size int) (float64, bool) {
	n := float64(size)
	switch class {
	case ClassConstant:
		return 1, true
	case ClassLogarithmic:
		if n <= 1 {
			return 0, true
		}
		return math.Log(n), true
	case ClassLinear:
		return n, true
	case ClassLinearithmic:
		if n <= 1 {
			return 0, true
		}
		return n * math.Log(n), true
	case ClassQuadratic:
		return n * n, true
	case ClassCubic:
		return n * n * n, true
	case ClassExponential:
		if size > maxExponentialSize {
			return 0, false
		}
		return math.Exp2(n), true
	default:
		return 0, false
	}
}
