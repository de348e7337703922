package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// Default permission modes for entries this package creates.
const (
	DefaultDirPerm  os.FileMode = 0o755
	DefaultFilePerm os.FileMode = 0o644
)

// Get returns the full byte content of the file at path.
func Get(path string) ([]byte, error) {
	if !IsFile(path) {
		err := notFound("get", path)
		warn("file does not exist", path, err)
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		err = osError("get", path, err)
		warn("read failed", path, err)
		return nil, err
	}
	return data, nil
}

// GetString is Get with the content returned as a string.
func GetString(path string) (string, error) {
	data, err := Get(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Put writes content to path, fully replacing anything already there. The
// parent directory is created first; both the truncation and the write
// happen under an exclusive advisory lock.
func Put(path string, content []byte) error {
	return write("put", path, content, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// Append adds content to the end of the file at path, creating the file and
// its parent directory when absent. Same lock discipline as Put.
func Append(path string, content []byte) error {
	return write("append", path, content, os.O_WRONLY|os.O_CREATE|os.O_APPEND)
}

// Prepend places content before the current content of the file at path,
// rewriting it wholesale. Absent files are treated as empty. Not atomic with
// respect to concurrent appenders: an append landing between the read and
// the rewrite is lost.
func Prepend(path string, content []byte) error {
	var existing []byte
	if IsFile(path) {
		data, err := Get(path)
		if err != nil {
			return err
		}
		existing = data
	}
	combined := make([]byte, 0, len(content)+len(existing))
	combined = append(combined, content...)
	combined = append(combined, existing...)
	return Put(path, combined)
}

// write is the shared open-lock-write path behind Put and Append.
// Truncation is deferred until the lock is held: truncating at open time
// would cut the file out from under a concurrent writer still inside its
// locked write window.
func write(op, path string, content []byte, flag int) error {
	if err := MakeDirectory(filepath.Dir(path), DefaultDirPerm); err != nil {
		return err
	}
	truncate := flag&os.O_TRUNC != 0
	f, err := os.OpenFile(path, flag&^os.O_TRUNC, DefaultFilePerm)
	if err != nil {
		err = osError(op, path, err)
		warn("open for write failed", path, err)
		return err
	}
	defer f.Close()

	if err := lockFile(f); err != nil {
		err = osError(op, path, err)
		warn("lock failed", path, err)
		return err
	}
	defer unlockFile(f)

	if truncate {
		if err := f.Truncate(0); err != nil {
			err = osError(op, path, err)
			warn("truncate failed", path, err)
			return err
		}
	}
	if _, err := f.Write(content); err != nil {
		err = osError(op, path, err)
		warn("write failed", path, err)
		return err
	}
	return nil
}

// Delete removes each named file. Every path is attempted regardless of
// earlier failures; the result is nil only when all removals succeeded.
func Delete(paths ...string) error {
	var errs []error
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			wrapped := osError("delete", path, err)
			warn("delete failed", path, wrapped)
			errs = append(errs, wrapped)
		}
	}
	return errors.Join(errs...)
}
