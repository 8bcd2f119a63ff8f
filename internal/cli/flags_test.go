package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/lockbox/internal/errors"
	"github.com/mrz1836/lockbox/internal/flock"
)

func TestOutputFormats(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"text", "json", "yaml"}, ValidOutputFormats())

	for _, format := range ValidOutputFormats() {
		assert.True(t, IsValidOutputFormat(format), "format %q", format)
	}
	for _, format := range []string{"", "xml", "TEXT", "Json"} {
		assert.False(t, IsValidOutputFormat(format), "format %q", format)
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	t.Run("nil is success", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, ExitSuccess, ExitCodeForError(nil))
	})

	t.Run("input errors exit 2", func(t *testing.T) {
		t.Parallel()
		inputErrs := []error{
			errors.ErrInvalidOutputFormat,
			errors.ErrUnsupportedMode,
			errors.ErrInvalidArgument,
			errors.Wrap(errors.ErrUnsupportedMode, "resolving default flags"),
			stderrors.New("unknown flag: --bogus"),
			stderrors.New(`if any flags in the group [verbose quiet] are set none of the others can be; [quiet verbose] were all set`),
		}
		for _, err := range inputErrs {
			assert.Equal(t, ExitInvalidInput, ExitCodeForError(err), "error %v", err)
		}
	})

	t.Run("other errors exit 1", func(t *testing.T) {
		t.Parallel()
		otherErrs := []error{
			errors.ErrLockFailed,
			&flock.LockError{Name: "state.lock", Err: stderrors.New("resource busy")},
			stderrors.New("boom"),
		}
		for _, err := range otherErrs {
			assert.Equal(t, ExitError, ExitCodeForError(err), "error %v", err)
		}
	})
}
