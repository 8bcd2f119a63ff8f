package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSensitiveValue(t *testing.T) {
	t.Parallel()

	t.Run("redacts fernet tokens", func(t *testing.T) {
		t.Parallel()
		in := "stored gAAAAABkT3kQx9_hbDWable0aBZ8qkEJCsWrtFgdpiY for user"
		out := FilterSensitiveValue(in)
		assert.NotContains(t, out, "gAAAAAB")
		assert.Contains(t, out, RedactedValue)
	})

	t.Run("redacts credential assignments", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{
			"password=hunter2swordfish",
			`secret: "super-secret-value"`,
			"salt=pepper-grinder",
		} {
			out := FilterSensitiveValue(in)
			assert.Contains(t, out, RedactedValue, "input %q", in)
		}
	})

	t.Run("leaves ordinary text alone", func(t *testing.T) {
		t.Parallel()
		in := "acquired exclusive lock on state.lock"
		assert.Equal(t, in, FilterSensitiveValue(in))
	})
}

func TestContainsSensitiveData(t *testing.T) {
	t.Parallel()

	assert.True(t, ContainsSensitiveData("password=hunter2swordfish"))
	assert.False(t, ContainsSensitiveData("unlock state.lock"))
}

func TestIsSensitiveFieldName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"password", "Password", "master_password", "api_key", "vault_salt", "token"} {
		assert.True(t, IsSensitiveFieldName(name), "field %q", name)
	}
	for _, name := range []string{"file", "service", "username", "mode"} {
		assert.False(t, IsSensitiveFieldName(name), "field %q", name)
	}
}

func TestSafeValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RedactedValue, SafeValue("password", "hunter2"))
	assert.Equal(t, "alice", SafeValue("username", "alice"))
}

func TestFilteringWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fw := NewFilteringWriter(&buf)

	in := `{"event":"credential stored","password":"hunter2swordfish"}`
	n, err := fw.Write([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, len(in), n, "must report the original length")
	assert.Contains(t, buf.String(), RedactedValue)
	assert.NotContains(t, buf.String(), "hunter2swordfish")
}

func TestSensitiveDataHook(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Hook(NewSensitiveDataHook())

	logger.Info().Msg("password=hunter2swordfish leaked into a message")
	assert.True(t, strings.Contains(buf.String(), "contains_filtered_data"))

	buf.Reset()
	logger.Info().Msg("lock released")
	assert.False(t, strings.Contains(buf.String(), "contains_filtered_data"))
}
