package calibstore

import (
	"time"

	"github.com/complexo-io/complexo/curvefit"
)

// Estimate combines a stored method's constant factor with claim's
// scaling function to project a running time at size, without
// re-running any benchmark. ok is false if the method isn't in r, or
// if claim doesn't evaluate at size (e.g. an exponential claim beyond
// curvefit's overflow guard).
func Estimate(r Record, typeName, methodName, claim string, size int) (time.Duration, bool) {
	result, found := r.Methods[MethodKey(typeName, methodName)]
	if !found || !result.Success {
		return 0, false
	}
	class, ok := curvefit.NormalizeClaim(claim)
	if !ok {
		class, ok = curvefit.NormalizeClaim(result.Class)
		if !ok {
			return 0, false
		}
	}
	factor, ok := curvefit.ScalingFactor(class, size)
	if !ok {
		return 0, false
	}
	return time.Duration(result.ConstantFactor * factor), true
}
