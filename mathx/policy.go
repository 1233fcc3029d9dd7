package mathx

import (
	"github.com/clinia/clamp/errorx"
	"github.com/samber/lo"
)

// Policy selects how a clamp treats inverted and missing bounds.
type Policy string

const (
	// PolicyStrict fails when min > max.
	PolicyStrict = Policy("strict")
	// PolicyLenient computes max(min, min(value, max)) and never fails.
	PolicyLenient = Policy("lenient")
	// PolicyOptional treats nil and castx.Undefined bounds as absent.
	PolicyOptional = Policy("optional")
)

var Policies = []Policy{PolicyStrict, PolicyLenient, PolicyOptional}

func ParsePolicy(s string) (Policy, error) {
	p := Policy(s)
	if err := p.Validate(); err != nil {
		return "", err
	}

	return p, nil
}

func (p Policy) String() string {
	return string(p)
}

func (p Policy) Validate() error {
	if !lo.Contains(Policies, p) {
		return errorx.InvalidArgumentErrorf("invalid clamp policy %q, expected one of %v", string(p), Policies)
	}
	return nil
}

// Clamp applies the policy to dynamic operands, given in (value, min, max) order.
func (p Policy) Clamp(value, min, max any) (float64, error) {
	switch p {
	case PolicyStrict:
		return ClampValue(value, min, max)
	case PolicyLenient:
		return ClampValueLenient(value, min, max), nil
	case PolicyOptional:
		return ClampValueOptional(value, min, max), nil
	default:
		return 0, p.Validate()
	}
}
