package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinels are distinct", func(t *testing.T) {
		sentinels := []error{
			ErrUnsupportedMode,
			ErrLockFailed,
			ErrInvalidToken,
			ErrKeyNotSet,
			ErrStoreRead,
			ErrStoreWrite,
			ErrStoreDelete,
			ErrSaltRequired,
			ErrConfigNil,
			ErrConfigInvalidVault,
			ErrConfigInvalidLog,
			ErrValueOutOfRange,
			ErrEmptyValue,
			ErrInvalidOutputFormat,
			ErrInvalidArgument,
		}
		seen := make(map[string]bool, len(sentinels))
		for _, err := range sentinels {
			require.Error(t, err)
			assert.False(t, seen[err.Error()], "duplicate sentinel message: %s", err.Error())
			seen[err.Error()] = true
		}
	})

	t.Run("messages are lowercase", func(t *testing.T) {
		assert.Equal(t, "lock operation failed", ErrLockFailed.Error())
		assert.Equal(t, "unsupported file mode", ErrUnsupportedMode.Error())
		assert.Equal(t, "invalid encryption token", ErrInvalidToken.Error())
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
		assert.NoError(t, Wrapf(nil, "context %d", 1))
	})

	t.Run("preserves sentinel chain", func(t *testing.T) {
		err := Wrap(ErrLockFailed, "acquiring workspace lock")
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, ErrLockFailed))
		assert.Equal(t, "acquiring workspace lock: lock operation failed", err.Error())
	})

	t.Run("wrapf interpolates and preserves chain", func(t *testing.T) {
		err := Wrapf(ErrStoreWrite, "storing credential for %q", "alice")
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, ErrStoreWrite))
		assert.Contains(t, err.Error(), `"alice"`)
	})
}
