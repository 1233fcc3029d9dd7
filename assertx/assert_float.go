package assertx

import (
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

// sameFloat tells -0 and +0 apart, which == does not.
var sameFloat = cmp.FilterValues(func(x, y float64) bool {
	return x == 0 && y == 0
}, cmp.Comparer(func(x, y float64) bool {
	return math.Signbit(x) == math.Signbit(y)
}))

// SameFloat asserts that two floats are identical: NaN equals NaN and the sign of zero
// must match.
func SameFloat(t assert.TestingT, expected, actual float64, msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if Equal(t, expected, actual, cmpopts.EquateNaNs(), sameFloat) {
		return true
	}
	return assert.Fail(t, "floats are not identical", msgAndArgs...)
}
