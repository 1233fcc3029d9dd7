package errorx

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type CliniaError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`

	OriginalError error `json:"-"` // Not returned to clients

	stack Callers
}

var _ error = (*CliniaError)(nil)

func newWithStack(t ErrorType, msg string) *CliniaError {
	return &CliniaError{
		Type:    t,
		Message: msg,
		stack:   callers(2),
	}
}

func (e CliniaError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type.String(), e.Message)
}

// Unwrap exposes the original error so errors.Is and errors.As can reach sentinels
// attached with WithOriginalError.
func (e CliniaError) Unwrap() error {
	return e.OriginalError
}

// WithOriginalError returns a copy of the error carrying err as its cause.
func (e *CliniaError) WithOriginalError(err error) *CliniaError {
	c := *e
	c.OriginalError = err
	return &c
}

// StackTrace returns the call stack captured when the error was created.
func (e CliniaError) StackTrace() Callers {
	return e.stack
}

// Format implements the fmt.Formatter interface.
//
// The verbs:
//
//	%s	the error message
//	%v	same as %s, the plus flag appends the original error and the stack trace
//	%q	a double-quoted Go string with same contents as %s
func (e CliniaError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		io.WriteString(s, e.Error())
		if s.Flag('+') {
			if e.OriginalError != nil {
				io.WriteString(s, "\ncaused by: ")
				io.WriteString(s, e.OriginalError.Error())
			}
			if len(e.stack) > 0 {
				io.WriteString(s, "\n")
				e.stack.writeTrace(s)
			}
		}
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// IsCliniaError reports whether e, or any error it wraps, is a typed CliniaError.
func IsCliniaError(e error) (*CliniaError, bool) {
	if e == nil {
		return nil, false
	}

	var mE *CliniaError
	if !errors.As(e, &mE) {
		var vE CliniaError
		if !errors.As(e, &vE) {
			return nil, false
		}
		mE = &vE
	}

	if mE == nil || mE.Type == ErrorTypeUnspecified {
		return nil, false
	}

	return mE, true
}
