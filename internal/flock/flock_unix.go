//go:build unix

package flock

import (
	"errors"
	"io"

	"golang.org/x/sys/unix"
)

// fcntl record locks back both code paths on POSIX. Because they share
// one lock table per file, the shared region coincides with the
// exclusive whole-file region [0, LockLength): shared and exclusive
// locks taken by cooperating processes always see each other, which is
// the point of the region convention.
//
// fcntl locks are owned per process, not per descriptor. Conflicts only
// arise between processes; a second handle in the same process succeeds.

func lockShared(fd uintptr, blocking bool) error {
	lk := unix.Flock_t{
		Type:   unix.F_RDLCK,
		Whence: int16(io.SeekStart),
		Start:  0,
		Len:    LockLength,
	}
	return unix.FcntlFlock(fd, lockCmd(blocking), &lk)
}

func lockExclusive(fd uintptr, blocking bool) error {
	// The range starts at the cursor, which Lock has parked at offset 0.
	lk := unix.Flock_t{
		Type:   unix.F_WRLCK,
		Whence: int16(io.SeekCurrent),
		Start:  0,
		Len:    LockLength,
	}
	return unix.FcntlFlock(fd, lockCmd(blocking), &lk)
}

// lockCmd selects the waiting or fail-immediately fcntl command.
func lockCmd(blocking bool) int {
	if blocking {
		return unix.F_SETLKW
	}
	return unix.F_SETLK
}

func unlockWhole(fd uintptr) error {
	lk := unix.Flock_t{
		Type:   unix.F_UNLCK,
		Whence: int16(io.SeekCurrent),
		Start:  0,
		Len:    LockLength,
	}
	return unix.FcntlFlock(fd, unix.F_SETLK, &lk)
}

func unlockRange(fd uintptr) error {
	lk := unix.Flock_t{
		Type:   unix.F_UNLCK,
		Whence: int16(io.SeekStart),
		Start:  0,
		Len:    LockLength,
	}
	return unix.FcntlFlock(fd, unix.F_SETLK, &lk)
}

// isViolation reports whether err is the OS signaling that another
// holder already has a conflicting lock. POSIX allows either EACCES or
// EAGAIN for a failed F_SETLK.
func isViolation(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EACCES)
}

// Releasing an fcntl lock is a single idempotent primitive, so the
// unlock fallback never triggers on POSIX.
func isWrongPrimitive(error) bool { return false }

func isNotLocked(error) bool { return false }
