package castx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	for _, tc := range []struct {
		in       float64
		expected string
	}{
		{in: 0, expected: "0"},
		{in: math.Copysign(0, -1), expected: "0"},
		{in: 5, expected: "5"},
		{in: -5, expected: "-5"},
		{in: 10, expected: "10"},
		{in: 1.5, expected: "1.5"},
		{in: 123.456, expected: "123.456"},
		{in: 0.1, expected: "0.1"},
		{in: 0.000001, expected: "0.000001"},
		{in: 1.5e-7, expected: "1.5e-7"},
		{in: 1e-7, expected: "1e-7"},
		{in: 1e20, expected: "100000000000000000000"},
		{in: 1e21, expected: "1e+21"},
		{in: 1.25e22, expected: "1.25e+22"},
		{in: math.Inf(1), expected: "Infinity"},
		{in: math.Inf(-1), expected: "-Infinity"},
		{in: math.NaN(), expected: "NaN"},
	} {
		assert.Equal(t, tc.expected, FormatNumber(tc.in), "FormatNumber(%v)", tc.in)
	}
}

func TestFormatNumberRoundTrip(t *testing.T) {
	for _, f := range []float64{3, -0.75, 1e-9, 6.02214076e23, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		assert.Equal(t, f, StringToNumber(FormatNumber(f)))
	}
}
