package flock_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/lockbox/internal/errors"
	"github.com/mrz1836/lockbox/internal/flock"
)

func TestDefaultFlags(t *testing.T) {
	t.Parallel()

	t.Run("read modes resolve to shared", func(t *testing.T) {
		t.Parallel()
		for _, mode := range []string{"r", "rb", "rt", "r+", "rb+"} {
			flags, err := flock.DefaultFlags(mode)
			require.NoError(t, err, "mode %q", mode)
			assert.Equal(t, flock.Shared, flags, "mode %q", mode)
		}
	})

	t.Run("write modes resolve to exclusive", func(t *testing.T) {
		t.Parallel()
		for _, mode := range []string{"w", "a", "x", "wb", "w+", "ab", "a+", "xb", "x+"} {
			flags, err := flock.DefaultFlags(mode)
			require.NoError(t, err, "mode %q", mode)
			assert.Equal(t, flock.Exclusive, flags, "mode %q", mode)
		}
	})

	t.Run("unsupported modes fail", func(t *testing.T) {
		t.Parallel()
		for _, mode := range []string{"", "z", "rw", "wr", "read", "+", "b"} {
			flags, err := flock.DefaultFlags(mode)
			require.Error(t, err, "mode %q", mode)
			assert.True(t, stderrors.Is(err, errors.ErrUnsupportedMode), "mode %q", mode)
			assert.Contains(t, err.Error(), mode)
			assert.Zero(t, flags)
		}
	})
}

func TestFlagString(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flags flock.Flag
		want  string
	}{
		"none":        {0, "none"},
		"exclusive":   {flock.Exclusive, "exclusive"},
		"shared":      {flock.Shared, "shared"},
		"unlock":      {flock.Unlock, "unlock"},
		"combination": {flock.Exclusive | flock.NonBlocking, "exclusive|non-blocking"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, test.flags.String())
		})
	}
}
