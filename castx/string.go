package castx

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
	radixLiteral   = regexp.MustCompile(`^0(?:[xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// StringToNumber parses s as a numeric literal after trimming white space and line
// terminators. An empty string is 0 and anything that is not a literal is NaN.
func StringToNumber(s string) float64 {
	s = strings.TrimFunc(s, isWhiteSpace)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if radixLiteral.MatchString(s) {
		return parseRadix(s[2:], radixOf(s[1]))
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	// Out of range values are already rounded to ±Inf or ±0.
	return f
}

func radixOf(prefix byte) int {
	switch prefix {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	default:
		return 2
	}
}

// parseRadix handles literals of any length, rounding to the nearest float64.
func parseRadix(digits string, base int) float64 {
	if u, err := strconv.ParseUint(digits, base, 64); err == nil && u <= 1<<53 {
		return float64(u)
	}

	i, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	return f
}

// isWhiteSpace matches the WhiteSpace and LineTerminator productions. U+0085 is not
// part of either, so unicode.IsSpace cannot be used.
func isWhiteSpace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', '\n', '\r', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
