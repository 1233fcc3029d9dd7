package cli

import (
	"github.com/clinia/clamp/castx"
)

// ParseOperand turns a command line token into a dynamic operand. The literals null,
// undefined, true and false keep their meaning, anything else is left as a string
// for castx.ToNumber.
func ParseOperand(s string) any {
	switch s {
	case "null":
		return nil
	case "undefined":
		return castx.Undefined
	case "true":
		return true
	case "false":
		return false
	default:
		return s
	}
}
