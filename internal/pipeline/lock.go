package pipeline

import (
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFile = ".wisdom-flow.lock"

// lockOutput takes a non-blocking exclusive lock on dir so only one run
// writes the output files at a time.
func lockOutput(dir string) (*flock.Flock, error) {
	path := filepath.Join(dir, lockFile)
	lock := flock.New(path)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, &IOError{Op: "lock", Path: path, Err: err}
	}
	if !ok {
		return nil, &IOError{Op: "lock", Path: path, Err: ErrLocked}
	}
	return lock, nil
}
