// Package flock provides advisory, mode-aware file locking.
//
// The engine translates a small flag vocabulary (Exclusive, Shared,
// NonBlocking, Unlock) into the platform's lock primitives. Exclusive
// locks cover the whole file starting at offset 0; shared locks use a
// range primitive over a documented region that conflicts with
// exclusive holders while permitting other shared holders. Cursor
// position is preserved across every Lock and Unlock call, on success
// and failure alike.
//
// The package never opens or closes files. Handles are borrowed for the
// duration of a call and ownership stays with the caller. Whether the
// operating system drops advisory locks when a descriptor is closed is
// a platform fact, not a guarantee made here: the only release this
// package promises is an explicit Unlock.
//
// Locks are advisory. They constrain cooperating processes that also
// take locks; they do not prevent plain reads or writes. Two goroutines
// racing Lock on the same handle have OS-defined outcomes and must be
// serialized by the caller.
//
// Usage:
//
//	f, _ := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
//	flags, _ := flock.DefaultFlags("w")
//	if err := flock.Default().Lock(f, flags|flock.NonBlocking); err != nil {
//	    // Lock not acquired - file is in use
//	}
//	defer flock.Default().Unlock(f)
package flock
