package castx

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clinia/clamp/assertx"
)

type celsius float32

type label string

type valueOf struct {
	v any
}

func (p valueOf) Primitive() any {
	return p.v
}

func TestToNumber(t *testing.T) {
	five := 5
	var nilPtr *int
	var nilValueOf *valueOf

	for k, tc := range []struct {
		in       any
		expected float64
	}{
		{in: nil, expected: 0},
		{in: true, expected: 1},
		{in: false, expected: 0},
		{in: 5, expected: 5},
		{in: int8(-3), expected: -3},
		{in: uint64(42), expected: 42},
		{in: uintptr(7), expected: 7},
		{in: float32(0.5), expected: 0.5},
		{in: -2.25, expected: -2.25},
		{in: celsius(21.5), expected: 21.5},
		{in: 3 * time.Millisecond, expected: 3e6},
		{in: "5", expected: 5},
		{in: label("7"), expected: 7},
		{in: []byte(" 12 "), expected: 12},
		{in: json.Number("1e3"), expected: 1000},
		{in: valueOf{v: "8"}, expected: 8},
		{in: valueOf{v: valueOf{v: true}}, expected: 1},
		{in: time.UnixMilli(1700000000123), expected: 1700000000123},
		{in: &five, expected: 5},
		{in: nilPtr, expected: 0},
		{in: nilValueOf, expected: 0},
		{in: &valueOf{v: "6"}, expected: 6},
		{in: []int{}, expected: 0},
		{in: []any{nil}, expected: 0},
		{in: []any{Undefined}, expected: 0},
		{in: []string{"9"}, expected: 9},
		{in: [1]int{4}, expected: 4},
		{in: [][]int{{}}, expected: 0},
		{in: [][]string{{"3"}}, expected: 3},
		{in: []any{&five}, expected: 5},
		{in: []*int{nilPtr}, expected: 0},
		{in: []string{"-0"}, expected: math.Copysign(0, -1)},
	} {
		t.Run(fmt.Sprintf("case=%d", k), func(t *testing.T) {
			assertx.SameFloat(t, tc.expected, ToNumber(tc.in), "ToNumber(%#v)", tc.in)
		})
	}
}

func TestToNumberNaN(t *testing.T) {
	for k, in := range []any{
		Undefined,
		"abc",
		[]bool{true},
		[]int{1, 2},
		map[string]int{"a": 1},
		struct{ A int }{A: 1},
		func() {},
		valueOf{v: Undefined},
		[]valueOf{{v: 1}},
		[]any{&valueOf{v: 1}},
		[]time.Time{time.UnixMilli(1)},
		[][]int{{1, 2}},
	} {
		t.Run(fmt.Sprintf("case=%d", k), func(t *testing.T) {
			assert.True(t, math.IsNaN(ToNumber(in)), "ToNumber(%#v) should be NaN", in)
		})
	}
}

func TestToNumberCyclicList(t *testing.T) {
	cyclic := []any{nil}
	cyclic[0] = cyclic

	assert.Equal(t, 0.0, ToNumber(cyclic))
	assert.Equal(t, 0.0, ToNumber([]any{cyclic}))
	assert.True(t, math.IsNaN(ToNumber([]any{"1", cyclic})))
}

func TestToNumberSignedZeroInList(t *testing.T) {
	negZero := math.Copysign(0, -1)

	assert.True(t, math.Signbit(ToNumber(negZero)))
	for k, in := range []any{
		[]float64{negZero},
		[1]float32{float32(negZero)},
		[]any{negZero},
	} {
		t.Run(fmt.Sprintf("case=%d", k), func(t *testing.T) {
			n := ToNumber(in)
			assert.Equal(t, 0.0, n)
			assert.False(t, math.Signbit(n), "ToNumber(%#v) should be +0", in)
		})
	}
}

func TestIsAbsent(t *testing.T) {
	assert.True(t, IsAbsent(nil))
	assert.True(t, IsAbsent(Undefined))
	assert.False(t, IsAbsent(0))
	assert.False(t, IsAbsent(""))
	assert.False(t, IsAbsent(false))
	assert.Equal(t, "undefined", fmt.Sprint(Undefined))
}
