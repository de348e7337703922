//go:build !windows

package storage

import (
	"os"
	"syscall"
)

const accessWriteOK = 0x2 // W_OK

// accessWritable delegates to the OS access(2) write-permission check.
func accessWritable(path string) bool {
	return syscall.Access(path, accessWriteOK) == nil
}

// lockFile takes an exclusive advisory lock on f. Blocks until any other
// holder releases; serializes writers within the process and across
// processes sharing the filesystem.
func lockFile(f *os.File) error {
	return syscall.Flock(int(f.Fd()), syscall.LOCK_EX)
}

func unlockFile(f *os.File) error {
	return syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
}
