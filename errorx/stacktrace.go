package errorx

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
)

const stackTraceDepth = 32

type Frame struct {
	File     string
	Line     int
	Function string
}

// String implements the fmt.Stringer interface.
func (f Frame) String() string {
	s := &strings.Builder{}
	f.writeFrame(s)
	return s.String()
}

func (f Frame) writeFrame(w io.Writer) {
	io.WriteString(w, "\tat ")
	io.WriteString(w, shortname(f.Function))
	io.WriteString(w, " (")
	io.WriteString(w, f.File)
	io.WriteString(w, ":")
	io.WriteString(w, strconv.Itoa(f.Line))
	io.WriteString(w, ")")
}

// Callers is a list of program counters returned by the runtime.Callers.
type Callers []uintptr

// Frames returns a slice of structures with a function/file/line information.
func (c Callers) Frames() []Frame {
	if len(c) == 0 {
		return nil
	}

	r := make([]Frame, 0, len(c))
	f := runtime.CallersFrames(c)
	for {
		frame, more := f.Next()
		r = append(r, Frame{
			File:     frame.File,
			Line:     frame.Line,
			Function: frame.Function,
		})
		if !more {
			break
		}
	}
	return r
}

// String implements the fmt.Stringer interface.
func (c Callers) String() string {
	s := &strings.Builder{}
	c.writeTrace(s)
	return s.String()
}

// Format implements the fmt.Formatter interface.
//
// The verbs:
//
//	%s	a stack trace
//	%v	same as %s
//	%q	a double-quoted Go string with same contents as %s
func (c Callers) Format(s fmt.State, verb rune) {
	switch verb {
	case 'q':
		io.WriteString(s, strconv.Quote(c.String()))
	default:
		c.writeTrace(s)
	}
}

func (c Callers) writeTrace(w io.Writer) {
	for _, frame := range c.Frames() {
		frame.writeFrame(w)
		io.WriteString(w, "\n")
	}
}

// callers skips itself and runtime.Callers on top of skip.
func callers(skip int) Callers {
	b := make([]uintptr, stackTraceDepth)
	l := runtime.Callers(skip+2, b[:])
	return b[:l]
}

func shortname(name string) string {
	i := strings.LastIndex(name, "/")
	return name[i+1:]
}
