package mathx

import (
	"github.com/clinia/clamp/castx"
)

// ClampValue coerces every operand with castx.ToNumber and applies Clamp.
func ClampValue(value, min, max any) (float64, error) {
	return Clamp(castx.ToNumber(value), castx.ToNumber(min), castx.ToNumber(max))
}

// ClampValueLenient coerces every operand with castx.ToNumber and applies ClampLenient.
func ClampValueLenient(value, min, max any) float64 {
	return ClampLenient(castx.ToNumber(value), castx.ToNumber(min), castx.ToNumber(max))
}

// ClampValueOptional always coerces value. A bound that is nil or castx.Undefined is
// absent, any other bound is coerced and applied like ClampOptional.
func ClampValueOptional(value, min, max any) float64 {
	return ClampOptional(castx.ToNumber(value), bound(min), bound(max))
}

func bound(x any) *float64 {
	if castx.IsAbsent(x) {
		return nil
	}
	f := castx.ToNumber(x)
	return &f
}
