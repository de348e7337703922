package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// EntryType classifies what a path points at.
type EntryType string

const (
	TypeFile    EntryType = "file"
	TypeDir     EntryType = "dir"
	TypeUnknown EntryType = "unknown"
)

// Exists reports whether path names a present filesystem entry of any kind.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Missing reports whether path names nothing.
func Missing(path string) bool {
	return !Exists(path)
}

// IsFile reports whether path names a regular file. False for missing paths.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDirectory reports whether path names a directory. False for missing paths.
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsWritable reports whether the entry at path exists and the process may
// write to it. A missing path is never writable; there is no fallback check
// against the parent directory.
func IsWritable(path string) bool {
	if Missing(path) {
		return false
	}
	return accessWritable(path)
}

// Type returns "file" for regular files, "dir" for directories, and
// "unknown" for everything else, missing paths included.
func Type(path string) EntryType {
	switch {
	case IsFile(path):
		return TypeFile
	case IsDirectory(path):
		return TypeDir
	default:
		return TypeUnknown
	}
}

// Extension returns the substring after the last dot of the final path
// segment, without the dot: "archive.tar.gz" yields "gz". Empty when the
// segment has no dot.
func Extension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// Name returns the final path segment with its extension stripped, or ""
// when the path has no segment.
func Name(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Basename returns the final path segment, extension included.
func Basename(path string) string {
	return filepath.Base(path)
}

// Dirname returns the parent portion of path.
func Dirname(path string) string {
	return filepath.Dir(path)
}
