package flock

import (
	"fmt"
	"strings"

	"github.com/mrz1836/lockbox/internal/errors"
)

// Flag selects lock semantics. Flags combine with bitwise OR.
type Flag uint32

const (
	// Exclusive requests a lock with at most one holder.
	Exclusive Flag = 0x1

	// Shared requests a lock that permits other shared holders but
	// conflicts with exclusive ones. Exclusive and Shared are mutually
	// exclusive intents; setting both is a caller error and the shared
	// branch wins.
	Shared Flag = 0x2

	// NonBlocking makes the call fail immediately instead of waiting
	// when the lock is unavailable.
	NonBlocking Flag = 0x4

	// Unlock releases a held lock. It is only meaningful standalone;
	// Lock delegates to Unlock when this bit is set and ignores the rest.
	Unlock Flag = 0x8
)

// String returns a pipe-separated name list for logging.
func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, n := range []struct {
		bit  Flag
		name string
	}{
		{Exclusive, "exclusive"},
		{Shared, "shared"},
		{NonBlocking, "non-blocking"},
		{Unlock, "unlock"},
	} {
		if f&n.bit != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// DefaultFlags resolves a textual file access mode to its default lock
// flags: Exclusive for "w", "a" and "x", Shared for "r". Modifier
// characters ("t", "b", "+") are ignored, so "rb+" resolves the same as
// "r". Any other mode fails with errors.ErrUnsupportedMode.
func DefaultFlags(mode string) (Flag, error) {
	switch strings.TrimRight(mode, "tb+") {
	case "r":
		return Shared, nil
	case "w", "a", "x":
		return Exclusive, nil
	default:
		return 0, fmt.Errorf("%w: %q", errors.ErrUnsupportedMode, mode)
	}
}
