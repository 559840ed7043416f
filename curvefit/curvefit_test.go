package curvefit_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complexo-io/complexo/bench"
	"github.com/complexo-io/complexo/curvefit"
)

func linearResults(c float64, noisePct float64) []bench.Result {
	sizes := []int{100, 500, 1000, 5000, 10000, 20000}
	results := make([]bench.Result, len(sizes))
	for i, n := range sizes {
		noise := 1.0
		if noisePct != 0 {
			// alternate above/below the line so the noise averages out
			// rather than biasing the regression one direction.
			if i%2 == 0 {
				noise = 1 + noisePct
			} else {
				noise = 1 - noisePct
			}
		}
		results[i] = bench.Result{Size: n, Mean: time.Duration(c * float64(n) * noise), Samples: 10, CV: 0.02}
	}
	return results
}

func linearithmicResults(c float64) []bench.Result {
	sizes := []int{100, 500, 1000, 5000, 10000, 20000}
	results := make([]bench.Result, len(sizes))
	for i, n := range sizes {
		nf := float64(n)
		results[i] = bench.Result{Size: n, Mean: time.Duration(c * nf * math.Log(nf)), Samples: 10, CV: 0.02}
	}
	return results
}

func TestVerifyDetectsLinearClass(t *testing.T) {
	results := linearResults(10, 0.05)
	v := curvefit.Verify(results, "O(n)")
	require.Equal(t, curvefit.ClassLinear, v.BestFit)
	assert.GreaterOrEqual(t, bestRSquared(v, curvefit.ClassLinear), 0.99)
	assert.True(t, v.Matches)
}

func TestVerifyDetectsLinearithmicOverLinearAndQuadratic(t *testing.T) {
	results := linearithmicResults(1)
	v := curvefit.Verify(results, "")
	assert.Equal(t, curvefit.ClassLinearithmic, v.BestFit)

	linR2 := bestRSquared(v, curvefit.ClassLinear)
	quadR2 := bestRSquared(v, curvefit.ClassQuadratic)
	bestR2 := bestRSquared(v, v.BestFit)
	assert.Greater(t, bestR2, linR2)
	assert.Greater(t, bestR2, quadR2)
}

func TestConfidenceNonDecreasingInSampleCount(t *testing.T) {
	full := linearResults(10, 0.01)
	v5 := curvefit.Verify(full, "")
	v3 := curvefit.Verify(full[:3], "")
	assert.GreaterOrEqual(t, v5.Confidence, v3.Confidence)
}

func TestNormalizeClaimAcceptsUnicodeAndWhitespace(t *testing.T) {
	c, ok := curvefit.NormalizeClaim("Θ( n² )")
	require.True(t, ok)
	assert.Equal(t, curvefit.ClassQuadratic, c)
}

func TestNormalizeClaimRejectsUnknownForm(t *testing.T) {
	_, ok := curvefit.NormalizeClaim("O(n!)")
	assert.False(t, ok)
}

func bestRSquared(v curvefit.Verification, class curvefit.Class) float64 {
	for _, f := range v.Fits {
		if f.Class == class {
			return f.RSquared
		}
	}
	return 0
}
