package flock

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/mrz1836/lockbox/internal/errors"
	"github.com/mrz1836/lockbox/internal/registry"
)

// LockLength is the byte length of the whole-file lock region. The
// 2^31-1 maximum is kept for 32-bit compatibility and matches the
// region used by cooperating implementations.
const LockLength = 1<<31 - 1

// LockError reports a failed lock or unlock operation. It unwraps to
// both errors.ErrLockFailed (for categorization) and the underlying OS
// error (for inspection).
type LockError struct {
	// Name is the name of the file the operation targeted.
	Name string
	// Err is the underlying OS error.
	Err error
}

// Error implements the error interface.
func (e *LockError) Error() string {
	return fmt.Sprintf("lock %s: %v", e.Name, e.Err)
}

// Unwrap exposes both the ErrLockFailed category and the OS cause to
// errors.Is and errors.As.
func (e *LockError) Unwrap() []error {
	return []error{errors.ErrLockFailed, e.Err}
}

// Locker acquires and releases advisory locks on open file handles.
// The zero value is not usable; construct one with New or share the
// process-wide instance via Default.
type Locker struct {
	log zerolog.Logger
}

// New returns a Locker that logs nothing.
func New() *Locker {
	return &Locker{log: zerolog.Nop()}
}

// NewWithLogger returns a Locker that emits debug events to log.
func NewWithLogger(log zerolog.Logger) *Locker {
	return &Locker{log: log}
}

// registryKey identifies the Locker singleton in the process registry.
const registryKey = "flock.Locker"

// Default returns the process-wide Locker. All callers observe the same
// instance for the lifetime of the process.
func Default() *Locker {
	inst := registry.GetOrCreate(registryKey, func() any { return New() })
	return inst.(*Locker)
}

// Lock acquires an advisory lock on f with the given flags. Shared
// requests take the range primitive over the shared region without
// moving the cursor. Exclusive requests take the whole-file primitive
// from offset 0: the cursor is parked at the start of the file for the
// duration of the call and restored on every exit path.
//
// A lock violation (another holder) surfaces as *LockError wrapping
// errors.ErrLockFailed. On the shared path any other OS error is
// propagated unchanged; the exclusive path wraps every failure.
func (l *Locker) Lock(f *os.File, flags Flag) error {
	if flags&Unlock != 0 {
		return l.Unlock(f)
	}
	if flags&Shared != 0 {
		return l.lockShared(f, flags)
	}
	return l.lockExclusive(f, flags)
}

func (l *Locker) lockShared(f *os.File, flags Flag) error {
	// The range primitive addresses the shared region absolutely, so
	// the cursor stays wherever the caller left it.
	if err := lockShared(f.Fd(), flags&NonBlocking == 0); err != nil {
		if isViolation(err) {
			return &LockError{Name: f.Name(), Err: err}
		}
		// Unrecognized OS errors propagate unchanged.
		return err
	}
	l.log.Debug().Str("file", f.Name()).Stringer("flags", flags).Msg("shared lock acquired")
	return nil
}

func (l *Locker) lockExclusive(f *os.File, flags Flag) (err error) {
	restore, serr := parkCursor(f)
	if serr != nil {
		return &LockError{Name: f.Name(), Err: serr}
	}
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			err = &LockError{Name: f.Name(), Err: rerr}
		}
	}()

	if lerr := lockExclusive(f.Fd(), flags&NonBlocking == 0); lerr != nil {
		return &LockError{Name: f.Name(), Err: lerr}
	}
	l.log.Debug().Str("file", f.Name()).Stringer("flags", flags).Msg("exclusive lock acquired")
	return nil
}

// Unlock releases any advisory lock held on f by this process. The
// whole-file unlock primitive runs first; when it signals that it is
// not the primitive holding the lock, the range unlock over the shared
// region runs instead. A "nothing was locked" result from that fallback
// is treated as success, so Unlock is safe to call redundantly. The
// cursor is restored on every exit path.
func (l *Locker) Unlock(f *os.File) (err error) {
	restore, serr := parkCursor(f)
	if serr != nil {
		return &LockError{Name: f.Name(), Err: serr}
	}
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			err = &LockError{Name: f.Name(), Err: rerr}
		}
	}()

	uerr := unlockWhole(f.Fd())
	if uerr == nil {
		l.log.Debug().Str("file", f.Name()).Msg("lock released")
		return nil
	}
	if !isWrongPrimitive(uerr) {
		return &LockError{Name: f.Name(), Err: uerr}
	}

	// The whole-file primitive is not the one holding the lock; the
	// shared region must have been taken via the range primitive.
	ferr := unlockRange(f.Fd())
	switch {
	case ferr == nil:
		l.log.Debug().Str("file", f.Name()).Msg("shared lock released")
		return nil
	case isNotLocked(ferr):
		// Unlocking an already-unlocked file is a no-op, matching
		// POSIX semantics.
		return nil
	default:
		return &LockError{Name: f.Name(), Err: ferr}
	}
}

// parkCursor records the current cursor position, moves the cursor to
// the start of the file when it sits elsewhere, and returns the restore
// step. Callers must run the restore step on every exit path.
func parkCursor(f *os.File) (restore func() error, err error) {
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	if pos == 0 {
		return func() error { return nil }, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return func() error {
		_, rerr := f.Seek(pos, io.SeekStart)
		return rerr
	}, nil
}
