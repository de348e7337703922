package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// Copy duplicates the file at src to dst, creating dst's parent directory
// recursively when needed. The destination keeps the source's permission
// bits. src must be an existing file.
func Copy(src, dst string) error {
	if !IsFile(src) {
		err := notFound("copy", src)
		warn("source is not a file", src, err)
		return err
	}
	info, err := os.Stat(src)
	if err != nil {
		err = osError("copy", src, err)
		warn("stat failed", src, err)
		return err
	}
	if err := MakeDirectory(filepath.Dir(dst), DefaultDirPerm); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		err = osError("copy", src, err)
		warn("open failed", src, err)
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		err = osError("copy", dst, err)
		warn("open destination failed", dst, err)
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		err = osError("copy", dst, err)
		warn("copy failed", dst, err)
		return err
	}
	if err := out.Close(); err != nil {
		err = osError("copy", dst, err)
		warn("close failed", dst, err)
		return err
	}
	return nil
}

// Move renames src to dst, creating dst's parent directory first. Rename is
// atomic only within one volume; across volumes it degrades to copy followed
// by deleting the source. src must be an existing file.
func Move(src, dst string) error {
	if !IsFile(src) {
		err := notFound("move", src)
		warn("source is not a file", src, err)
		return err
	}
	if err := MakeDirectory(filepath.Dir(dst), DefaultDirPerm); err != nil {
		return err
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	// Rename refuses cross-volume targets (EXDEV); fall back.
	if err := Copy(src, dst); err != nil {
		return err
	}
	return Delete(src)
}

// CopyDirectory mirrors the tree under src into dst. Regular files are
// copied, directories recreated; symlinks and other entry types are skipped.
// Every entry is attempted; failures come back joined.
func CopyDirectory(src, dst string) error {
	if !IsDirectory(src) {
		err := notFound("copy directory", src)
		warn("source is not a directory", src, err)
		return err
	}
	if err := MakeDirectory(dst, DefaultDirPerm); err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	record := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	conf := fastwalk.Config{Follow: false}
	walkErr := fastwalk.Walk(&conf, src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			record(enumError("copy directory", path, err))
			return nil
		}
		rel, relErr := filepath.Rel(src, path)
		if relErr != nil || rel == "." {
			return nil
		}
		target := filepath.Join(dst, rel)
		switch {
		case d.IsDir():
			if err := os.MkdirAll(target, DefaultDirPerm); err != nil {
				record(osError("copy directory", target, err))
			}
		case d.Type().IsRegular():
			if err := Copy(path, target); err != nil {
				record(err)
			}
		}
		return nil
	})
	if walkErr != nil {
		errs = append(errs, enumError("copy directory", src, walkErr))
	}
	err := errors.Join(errs...)
	if err != nil {
		warn("copy directory incomplete", src, err)
	}
	return err
}

// MoveDirectory renames the tree at src to dst, falling back to a mirror
// copy plus source deletion when rename is refused.
func MoveDirectory(src, dst string) error {
	if !IsDirectory(src) {
		err := notFound("move directory", src)
		warn("source is not a directory", src, err)
		return err
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := CopyDirectory(src, dst); err != nil {
		return err
	}
	return DeleteDirectory(src)
}
