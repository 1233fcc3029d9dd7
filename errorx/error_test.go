package errorx

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Run("should return clinia error from stack", func(t *testing.T) {
		err := InvalidArgumentErrorf("test")
		serr := errors.WithStack(err)

		cerr, ok := IsCliniaError(serr)
		require.True(t, ok)
		assert.Equal(t, ErrorTypeInvalidArgument, cerr.Type)
		assert.Equal(t, "test", cerr.Message)
	})

	t.Run("should return a clinia error without stack", func(t *testing.T) {
		err := InvalidArgumentErrorf("test")

		_, ok := IsCliniaError(err)
		assert.True(t, ok)
	})

	t.Run("should return a clinia error passed by value", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", CliniaError{Type: ErrorTypeInternal, Message: "boom"})

		cerr, ok := IsCliniaError(err)
		require.True(t, ok)
		assert.Equal(t, ErrorTypeInternal, cerr.Type)
	})

	t.Run("should not match unspecified or foreign errors", func(t *testing.T) {
		_, ok := IsCliniaError(CliniaError{Message: "untyped"})
		assert.False(t, ok)

		_, ok = IsCliniaError(stderrors.New("plain"))
		assert.False(t, ok)

		_, ok = IsCliniaError(nil)
		assert.False(t, ok)
	})

	t.Run("should return is invalid argument from stack", func(t *testing.T) {
		err := errors.WithStack(InvalidArgumentErrorf("test"))
		assert.True(t, IsInvalidArgumentError(err))
		assert.False(t, IsInternalError(err))
	})

	t.Run("should return is internal", func(t *testing.T) {
		err := InternalErrorf("test %d", 1)
		assert.True(t, IsInternalError(err))
		assert.Equal(t, "[INTERNAL] test 1", err.Error())
	})

	t.Run("should unwrap to the original error", func(t *testing.T) {
		sentinel := stderrors.New("sentinel")
		err := InvalidArgumentErrorf("bad input").WithOriginalError(sentinel)

		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, errors.WithStack(err), sentinel)
		assert.Equal(t, "[INVALID_ARGUMENT] bad input", err.Error())
	})

	t.Run("should not mutate the receiver when attaching an original error", func(t *testing.T) {
		base := InvalidArgumentErrorf("base")
		_ = base.WithOriginalError(stderrors.New("cause"))

		assert.NoError(t, base.OriginalError)
	})

	t.Run("should print the stack trace with the plus flag", func(t *testing.T) {
		err := InvalidArgumentErrorf("with stack").WithOriginalError(stderrors.New("cause"))

		out := fmt.Sprintf("%+v", err)
		assert.Contains(t, out, "[INVALID_ARGUMENT] with stack")
		assert.Contains(t, out, "caused by: cause")
		assert.Contains(t, out, "errorx.TestError")

		assert.Equal(t, "[INVALID_ARGUMENT] with stack", fmt.Sprintf("%v", err))
		assert.NotEmpty(t, err.StackTrace().Frames())
	})
}

func TestParseErrorType(t *testing.T) {
	t.Run("should parse a known type", func(t *testing.T) {
		et, err := ParseErrorType("INVALID_ARGUMENT")
		require.NoError(t, err)
		assert.Equal(t, ErrorTypeInvalidArgument, et)
	})

	t.Run("should reject an unknown type", func(t *testing.T) {
		et, err := ParseErrorType("NOPE")
		require.Error(t, err)
		assert.True(t, IsInvalidArgumentError(err))
		assert.Equal(t, ErrorTypeUnspecified, et)
	})
}
