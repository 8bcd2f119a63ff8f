package vault

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/mrz1836/lockbox/internal/crypto"
	"github.com/mrz1836/lockbox/internal/errors"
)

func newTestCypher(t *testing.T, secret string) *crypto.Cypher {
	t.Helper()
	c := crypto.NewCypher()
	require.NoError(t, c.SetPassword([]byte(secret), []byte("test-salt")))
	return c
}

func TestVault(t *testing.T) {
	// Not parallel: keyring.MockInit swaps the process-wide provider.
	keyring.MockInit()

	t.Run("set then get round-trips", func(t *testing.T) {
		v := New("lockbox-test", newTestCypher(t, "master"))

		require.NoError(t, v.Set("alice", "p@ssw0rd"))

		secret, ok, err := v.Get("alice")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "p@ssw0rd", secret)
	})

	t.Run("stored value is encrypted", func(t *testing.T) {
		v := New("lockbox-test", newTestCypher(t, "master"))
		require.NoError(t, v.Set("bob", "p@ssw0rd"))

		raw, err := keyring.Get("lockbox-test", "bob")
		require.NoError(t, err)
		assert.NotEqual(t, "p@ssw0rd", raw)
		assert.NotContains(t, raw, "p@ssw0rd")
	})

	t.Run("missing credential short-circuits decryption", func(t *testing.T) {
		v := New("lockbox-test", newTestCypher(t, "master"))

		secret, ok, err := v.Get("nobody")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, secret)
	})

	t.Run("wrong master password fails with ErrInvalidToken", func(t *testing.T) {
		writer := New("lockbox-test", newTestCypher(t, "master"))
		require.NoError(t, writer.Set("carol", "p@ssw0rd"))

		reader := New("lockbox-test", newTestCypher(t, "not-master"))
		_, _, err := reader.Get("carol")
		assert.True(t, stderrors.Is(err, errors.ErrInvalidToken))
	})

	t.Run("delete removes the credential", func(t *testing.T) {
		v := New("lockbox-test", newTestCypher(t, "master"))
		require.NoError(t, v.Set("dave", "p@ssw0rd"))

		require.NoError(t, v.Delete("dave"))

		_, ok, err := v.Get("dave")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("deleting a missing credential wraps ErrStoreDelete", func(t *testing.T) {
		v := New("lockbox-test", newTestCypher(t, "master"))

		err := v.Delete("nobody")
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrStoreDelete))
	})

	t.Run("set without a key fails with ErrKeyNotSet", func(t *testing.T) {
		v := New("lockbox-test", crypto.NewCypher())

		err := v.Set("erin", "p@ssw0rd")
		assert.True(t, stderrors.Is(err, errors.ErrKeyNotSet))
	})

	t.Run("default returns one instance per service", func(t *testing.T) {
		c := newTestCypher(t, "master")
		a := Default("vault-test-default", c)
		b := Default("vault-test-default", c)
		other := Default("vault-test-other", c)

		assert.Same(t, a, b)
		assert.NotSame(t, a, other)
	})
}
