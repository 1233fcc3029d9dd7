package mathx

import (
	"errors"

	"github.com/clinia/clamp/errorx"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// ErrInvalidRange is the cause attached to every error returned for an inverted range.
var ErrInvalidRange = errors.New("the minimum value cannot be higher than the maximum value")

func invalidRangeError[N Number](min, max N) *errorx.CliniaError {
	return errorx.InvalidArgumentErrorf("%s (min: %v, max: %v)", ErrInvalidRange, min, max).
		WithOriginalError(ErrInvalidRange)
}

// IsInvalidRangeError reports whether err was returned because min was higher than max.
func IsInvalidRangeError(err error) bool {
	return errorx.IsInvalidArgumentError(err) && errors.Is(err, ErrInvalidRange)
}

// Clamp returns the value of x clamped to the range [min, max].
// It fails with an invalid range error when min > max.
//
// NaN operands are not special cased: Clamp(NaN, 0, 10) is NaN and a NaN bound
// never matches, so it is ignored.
func Clamp[N Number](x, min, max N) (N, error) {
	if min > max {
		var zero N
		return zero, invalidRangeError(min, max)
	}
	if x < min {
		return min, nil
	}
	if x > max {
		return max, nil
	}
	return x, nil
}

// ClampLenient returns max(min, min(x, max)). It never fails: when min > max the
// result is min.
func ClampLenient[N Number](x, lo, hi N) N {
	return max(lo, min(x, hi))
}

// ClampOptional clamps x to the bounds that are set. A nil bound is not applied.
// The upper bound is applied first, so inverted bounds resolve to min.
func ClampOptional[N Number](x N, lo, hi *N) N {
	if hi != nil {
		x = min(x, *hi)
	}
	if lo != nil {
		x = max(x, *lo)
	}
	return x
}
