//go:build windows

package storage

import "os"

// accessWritable approximates the write-permission check via the read-only
// attribute, which is what the mode bits surface on Windows.
func accessWritable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().Perm()&0o200 != 0
}

// Windows has no flock; mandatory share modes on open handles already
// serialize writers there.
func lockFile(*os.File) error { return nil }

func unlockFile(*os.File) error { return nil }
