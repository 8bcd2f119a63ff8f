package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/lockbox/internal/errors"
)

func TestFormatVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		info     BuildInfo
		expected string
	}{
		{
			name:     "full build info",
			info:     BuildInfo{Version: "1.2.3", Commit: "abc1234", Date: "2026-08-30"},
			expected: "1.2.3 (commit: abc1234, built: 2026-08-30)",
		},
		{
			name:     "empty build info falls back to dev",
			info:     BuildInfo{},
			expected: "dev (commit: none, built: unknown)",
		},
		{
			name:     "partial build info",
			info:     BuildInfo{Version: "0.1.0"},
			expected: "0.1.0 (commit: none, built: unknown)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, formatVersion(tt.info))
		})
	}
}

// execRoot runs the root command with the given args and returns its
// combined output. Help and version handling short-circuit before the
// logger is initialized, so these cases never touch the filesystem.
func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"})
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCommandHelp(t *testing.T) {
	t.Parallel()

	out, err := execRoot(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "lockbox")
	assert.Contains(t, out, "lock")
	assert.Contains(t, out, "vault")
	assert.Contains(t, out, "config")
	assert.Contains(t, out, "--output")
}

func TestRootCommandVersion(t *testing.T) {
	t.Parallel()

	out, err := execRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test (commit: none, built: unknown)")
}

func TestRootCommandInvalidOutputFormat(t *testing.T) {
	t.Setenv("LOCKBOX_HOME", t.TempDir())

	_, err := execRoot(t, "-o", "xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRootCommandMutuallyExclusiveFlags(t *testing.T) {
	t.Setenv("LOCKBOX_HOME", t.TempDir())

	_, err := execRoot(t, "--verbose", "--quiet")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestGetLoggerAfterInit(t *testing.T) {
	var buf bytes.Buffer
	globalLoggerMu.Lock()
	globalLogger = InitLoggerWithWriter(true, false, &buf)
	globalLoggerMu.Unlock()

	logger := GetLogger()
	logger.Debug().Msg("visible at debug level")
	assert.Contains(t, buf.String(), "visible at debug level")
}
