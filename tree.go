package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// Files returns the full paths of the non-directory entries directly inside
// dir, in OS enumeration order.
func Files(dir string) ([]string, error) {
	return list(dir, false)
}

// Directories returns the full paths of the directories directly inside dir.
func Directories(dir string) ([]string, error) {
	return list(dir, true)
}

func list(dir string, wantDirs bool) ([]string, error) {
	if !IsDirectory(dir) {
		err := notFound("list", dir)
		warn("not a directory", dir, err)
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		err = enumError("list", dir, err)
		warn("enumeration failed", dir, err)
		return nil, err
	}
	// Non-nil even when empty so callers serializing the result get an
	// empty list, not null.
	out := []string{}
	for _, e := range entries {
		if e.IsDir() == wantDirs {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}

// AllFiles returns every non-directory entry anywhere under dir, each
// exactly once. Symlinked directories are reported as entries but never
// descended into, so circular symlinks cannot loop the walk.
func AllFiles(dir string) ([]string, error) {
	return walkTree(dir, false)
}

// AllDirectories returns every directory anywhere under dir.
func AllDirectories(dir string) ([]string, error) {
	return walkTree(dir, true)
}

func walkTree(dir string, wantDirs bool) ([]string, error) {
	if !IsDirectory(dir) {
		err := notFound("walk", dir)
		warn("not a directory", dir, err)
		return nil, err
	}

	var (
		mu       sync.Mutex
		out      = []string{}
		walkErrs []error
	)
	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			mu.Lock()
			walkErrs = append(walkErrs, err)
			mu.Unlock()
			return nil
		}
		if path == dir {
			return nil
		}
		if d.IsDir() == wantDirs {
			mu.Lock()
			out = append(out, path)
			mu.Unlock()
		}
		return nil
	})
	if err == nil {
		err = errors.Join(walkErrs...)
	}
	if err != nil {
		err = enumError("walk", dir, err)
		warn("walk failed", dir, err)
		return nil, err
	}
	return out, nil
}

// Glob returns the paths under dir matching pattern. Patterns may use ** to
// cross directory boundaries, gitignore style.
func Glob(dir, pattern string) ([]string, error) {
	if !IsDirectory(dir) {
		err := notFound("glob", dir)
		warn("not a directory", dir, err)
		return nil, err
	}
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		err = enumError("glob", dir, err)
		warn("glob failed", dir, err)
		return nil, err
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = filepath.Join(dir, m)
	}
	return out, nil
}

// MakeDirectory creates dir and any missing ancestors with perm. Calling it
// on an existing directory succeeds without touching anything.
func MakeDirectory(dir string, perm os.FileMode) error {
	if IsDirectory(dir) {
		return nil
	}
	if Exists(dir) {
		err := osError("mkdir", dir, os.ErrExist)
		warn("path occupied by a file", dir, err)
		return err
	}
	if err := os.MkdirAll(dir, perm); err != nil {
		err = osError("mkdir", dir, err)
		warn("mkdir failed", dir, err)
		return err
	}
	return nil
}

// DeleteDirectory removes dir and everything under it, children first. Every
// entry is attempted even after a failure; the joined error reports what
// survived.
func DeleteDirectory(dir string) error {
	if !IsDirectory(dir) {
		err := notFound("delete directory", dir)
		warn("not a directory", dir, err)
		return err
	}
	if cleanErr := clean(dir); cleanErr != nil {
		// Still try the root; emptied subtrees should not survive.
		if err := os.Remove(dir); err != nil {
			err = osError("delete directory", dir, err)
			warn("remove failed", dir, err)
			return errors.Join(cleanErr, err)
		}
		return cleanErr
	}
	if err := os.Remove(dir); err != nil {
		err = osError("delete directory", dir, err)
		warn("remove failed", dir, err)
		return err
	}
	return nil
}

// CleanDirectory removes everything directly or transitively under dir while
// preserving dir itself. An already-empty directory is a success.
func CleanDirectory(dir string) error {
	if !IsDirectory(dir) {
		err := notFound("clean", dir)
		warn("not a directory", dir, err)
		return err
	}
	return clean(dir)
}

// clean empties root without removing it. The traversal uses an explicit
// worklist rather than recursion so arbitrarily deep trees cannot exhaust
// the stack; directories are removed deepest-first after their contents have
// been attempted. Failures are collected, not fatal.
func clean(root string) error {
	var (
		errs  []error
		dirs  []string
		queue = []string{root}
	)
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			errs = append(errs, enumError("clean", dir, err))
			continue
		}
		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			// Symlinks enumerate as non-directories here, so a
			// symlinked directory is unlinked, never entered.
			if e.IsDir() {
				queue = append(queue, path)
				dirs = append(dirs, path)
				continue
			}
			if err := os.Remove(path); err != nil {
				errs = append(errs, osError("clean", path, err))
			}
		}
	}

	// The worklist discovered deeper directories later; reverse order is
	// child-before-parent.
	for i := len(dirs) - 1; i >= 0; i-- {
		if err := os.Remove(dirs[i]); err != nil {
			errs = append(errs, osError("clean", dirs[i], err))
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		warn("clean incomplete", root, err)
	}
	return err
}
