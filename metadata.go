package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"
)

// Size returns the byte length of the file at path.
func Size(path string) (int64, error) {
	info, err := statFile("size", path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// LastModified returns the OS-reported modification time of the file at path.
func LastModified(path string) (time.Time, error) {
	info, err := statFile("mtime", path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

func statFile(op, path string) (os.FileInfo, error) {
	if !IsFile(path) {
		err := notFound(op, path)
		warn("file does not exist", path, err)
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		err = osError(op, path, err)
		warn("stat failed", path, err)
		return nil, err
	}
	return info, nil
}

// MimeType returns the content-sniffed MIME type of the file at path.
func MimeType(path string) (string, error) {
	if !IsFile(path) {
		err := notFound("mime", path)
		warn("file does not exist", path, err)
		return "", err
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		err = osError("mime", path, err)
		warn("mime detection failed", path, err)
		return "", err
	}
	return mtype.String(), nil
}

// TotalSize sums the sizes of every file anywhere under dir.
func TotalSize(dir string) (int64, error) {
	if !IsDirectory(dir) {
		err := notFound("total size", dir)
		warn("not a directory", dir, err)
		return 0, err
	}
	var total atomic.Int64
	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total.Add(info.Size())
		return nil
	})
	if err != nil {
		err = enumError("total size", dir, err)
		warn("walk failed", dir, err)
		return 0, err
	}
	return total.Load(), nil
}

// SizeHuman returns the file size formatted for humans, e.g. "1.50 MB".
func SizeHuman(path string) (string, error) {
	size, err := Size(path)
	if err != nil {
		return "", err
	}
	return formatBytes(size), nil
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), units[exp])
}

// Hash returns the hex-encoded SHA-256 of the file content at path.
func Hash(path string) (string, error) {
	data, err := Get(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
