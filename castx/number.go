// Package castx converts dynamic values to numbers using the ECMAScript ToNumber rules,
// so values coming from loosely typed sources compare the same way they would in a
// JavaScript host.
package castx

import (
	"encoding/json"
	"math"
	"reflect"
	"time"

	"github.com/spf13/cast"
)

type undefined struct{}

// Undefined is the "no value at all" sentinel. It coerces to NaN, unlike nil which
// coerces to 0.
var Undefined = undefined{}

func (undefined) String() string {
	return "undefined"
}

// Primitive is implemented by values that know how to reduce themselves to a
// primitive before numeric conversion (the valueOf hook).
type Primitive interface {
	Primitive() any
}

// IsAbsent reports whether x is the nullish or the undefined sentinel.
func IsAbsent(x any) bool {
	return x == nil || x == Undefined
}

// ToNumber converts x to a float64.
//
// nil is 0, Undefined is NaN, booleans are 0 or 1, strings are parsed as numeric
// literals (NaN when unparseable) and Primitive values are reduced first. Values with
// no numeric meaning (maps, structs, funcs) are NaN. ToNumber never fails.
func ToNumber(x any) float64 {
	switch v := x.(type) {
	case nil:
		return 0
	case undefined:
		return math.NaN()
	case float64:
		return v
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return StringToNumber(v)
	case []byte:
		return StringToNumber(string(v))
	case json.Number:
		return StringToNumber(string(v))
	case Primitive:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return 0
		}
		return ToNumber(v.Primitive())
	case time.Time:
		return float64(v.UnixMilli())
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return numericKind(rv)
	case reflect.String:
		return StringToNumber(rv.String())
	case reflect.Bool:
		return ToNumber(rv.Bool())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return ToNumber(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		return listToNumber(rv)
	default:
		return math.NaN()
	}
}

// numericKind converts any integer or float kind. cast resolves named types itself,
// it only misses uintptr.
func numericKind(rv reflect.Value) float64 {
	if rv.Kind() == reflect.Uintptr {
		return float64(rv.Uint())
	}
	f, _ := cast.ToFloat64E(rv.Interface())
	return f
}

// listToNumber follows the array path: the list is joined into a string first, so only
// an empty list or a single element can produce a number.
func listToNumber(rv reflect.Value) float64 {
	return joinedToNumber(rv, map[uintptr]struct{}{})
}

// joinedToNumber converts a list through its joined text. A list met again while it is
// being joined contributes the empty string.
func joinedToNumber(rv reflect.Value, seen map[uintptr]struct{}) float64 {
	if rv.Kind() == reflect.Slice {
		if rv.IsNil() {
			return 0
		}
		p := rv.Pointer()
		if _, ok := seen[p]; ok {
			return 0
		}
		seen[p] = struct{}{}
		defer delete(seen, p)
	}

	switch rv.Len() {
	case 0:
		return 0
	case 1:
		return elemToNumber(rv.Index(0), seen)
	default:
		return math.NaN()
	}
}

// elemToNumber converts the text a single list element joins to.
func elemToNumber(ev reflect.Value, seen map[uintptr]struct{}) float64 {
	if ev.Kind() == reflect.Interface {
		if ev.IsNil() {
			return 0
		}
		ev = ev.Elem()
	}

	switch ev.Kind() {
	case reflect.Pointer:
		if ev.IsNil() {
			return 0
		}
	case reflect.Slice, reflect.Array:
		if _, ok := ev.Interface().([]byte); !ok {
			return joinedToNumber(ev, seen)
		}
	case reflect.Bool:
		// "true" and "false" are not numeric literals.
		return math.NaN()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		// -0 joins as "0".
		if n := numericKind(ev); n != 0 {
			return n
		}
		return 0
	}

	switch ev.Interface().(type) {
	case undefined:
		return 0
	case time.Time, Primitive:
		// Objects join as their display text, which is never a numeric literal.
		return math.NaN()
	}

	if ev.Kind() == reflect.Pointer {
		return elemToNumber(ev.Elem(), seen)
	}
	return ToNumber(ev.Interface())
}
