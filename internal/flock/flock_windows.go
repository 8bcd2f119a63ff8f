//go:build windows

package flock

import (
	"errors"

	"golang.org/x/sys/windows"
)

// Windows LockFileEx/UnlockFileEx API parameters.
// See: https://learn.microsoft.com/en-us/windows/win32/api/fileapi/nf-fileapi-lockfileex
//
// Exclusive locks cover [0, LockLength). Shared locks use the sentinel
// region established by cooperating implementations: a byte count with
// high dword 0xFFFF0000 (the -0x10000 convention) and low dword 0,
// starting at offset 0. The region overlaps the exclusive one, so locks
// taken via either primitive remain mutually visible.
const (
	lockReserved = 0 // Reserved parameter, must be zero

	wholeBytesLow  = LockLength
	wholeBytesHigh = 0

	sharedBytesLow  = 0
	sharedBytesHigh = 0xFFFF0000
)

func lockShared(fd uintptr, blocking bool) error {
	var flags uint32
	if !blocking {
		flags = windows.LOCKFILE_FAIL_IMMEDIATELY
	}
	return windows.LockFileEx(
		windows.Handle(fd),
		flags,
		lockReserved,
		sharedBytesLow,
		sharedBytesHigh,
		&windows.Overlapped{},
	)
}

func lockExclusive(fd uintptr, blocking bool) error {
	flags := uint32(windows.LOCKFILE_EXCLUSIVE_LOCK)
	if !blocking {
		flags |= windows.LOCKFILE_FAIL_IMMEDIATELY
	}
	return windows.LockFileEx(
		windows.Handle(fd),
		flags,
		lockReserved,
		wholeBytesLow,
		wholeBytesHigh,
		&windows.Overlapped{},
	)
}

func unlockWhole(fd uintptr) error {
	return windows.UnlockFileEx(
		windows.Handle(fd),
		lockReserved,
		wholeBytesLow,
		wholeBytesHigh,
		&windows.Overlapped{},
	)
}

func unlockRange(fd uintptr) error {
	return windows.UnlockFileEx(
		windows.Handle(fd),
		lockReserved,
		sharedBytesLow,
		sharedBytesHigh,
		&windows.Overlapped{},
	)
}

// isViolation reports whether err is the OS signaling that another
// holder already has a conflicting lock.
func isViolation(err error) bool {
	return errors.Is(err, windows.ERROR_LOCK_VIOLATION)
}

// isWrongPrimitive recognizes the whole-file unlock failing because the
// lock was taken over the shared sentinel region instead.
func isWrongPrimitive(err error) bool {
	return errors.Is(err, windows.ERROR_NOT_LOCKED) || errors.Is(err, windows.ERROR_ACCESS_DENIED)
}

// isNotLocked recognizes "the segment is already unlocked" from the
// fallback, which Unlock swallows to stay idempotent.
func isNotLocked(err error) bool {
	return errors.Is(err, windows.ERROR_NOT_LOCKED)
}
