package classify

// Compare totally orders two Classifications under the standard
// asymptotic hierarchy:
//
//	O(1) < O(log n) < O(n^k) < O(b^n) < O(n!)
//
// returning -1, 0, or 1 as a < b, a == b, or a > b. FormPolynomial and
// FormPolyLog share one tier ordered first by PolynomialDegree and
// only then by LogExponent, so n^2 correctly outranks n·log(n) even
// though the latter carries a log factor and the former does not —
// the degree, not the presence of a log factor, is what actually
// drives growth once degrees differ. FormExponential ties break on
// ExponentialBase. Classifications over different Variables are still
// comparable (the order is a property of growth shape, not of which
// symbol labels the input size); callers that need "is this even
// meaningful" should check Variable equality themselves before
// calling Compare.
func Compare(a, b Classification) int {
	ta, tb := tier(a.Form), tier(b.Form)
	if ta != tb {
		if ta < tb {
			return -1
		}
		return 1
	}
	switch ta {
	case 0, 4, 5:
		return 0
	case 1:
		return compareFloat(a.LogExponent, b.LogExponent)
	case 2:
		if c := compareFloat(a.PolynomialDegree, b.PolynomialDegree); c != 0 {
			return c
		}
		return compareFloat(a.LogExponent, b.LogExponent)
	case 3:
		return compareFloat(a.ExponentialBase, b.ExponentialBase)
	default:
		return 0
	}
}

// tier groups FormPolynomial and FormPolyLog into a single rung of the
// asymptotic order, since a log factor alone should not outrank a
// strictly higher polynomial degree.
func tier(f Form) int {
	switch f {
	case FormConstant:
		return 0
	case FormLogarithmic:
		return 1
	case FormPolynomial, FormPolyLog:
		return 2
	case FormExponential:
		return 3
	case FormFactorial:
		return 4
	default:
		return 5
	}
}

func compareFloat(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Dominant returns whichever of a, b is asymptotically larger under
// Compare, preferring a on an exact tie.
func Dominant(a, b Classification) Classification {
	if Compare(b, a) > 0 {
		return b
	}
	return a
}
