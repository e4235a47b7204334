package store

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrSessionLocked indicates another interactive session holds the data file.
var ErrSessionLocked = errors.New("another session is using the users file")

// Lock guards the data file for the lifetime of one interactive session.
type Lock struct {
	fl *flock.Flock
}

// LockPath returns the lock file path for a data file.
func LockPath(dataPath string) string {
	return dataPath + ".lock"
}

// TryLock takes the session lock without waiting.
// Returns ErrSessionLocked if another process holds it.
func (s *Store) TryLock() (*Lock, error) {
	fl := flock.New(LockPath(s.path))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking users file: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionLocked, fl.Path())
	}
	return &Lock{fl: fl}, nil
}

// Unlock releases the session lock. The lock file is left in place.
func (l *Lock) Unlock() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
