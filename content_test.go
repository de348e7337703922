package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")

	require.NoError(t, Put(path, []byte("hello world")))

	data, err := Get(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), data)

	content, err := GetString(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", content)
}

func TestPutEmptyContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")

	require.NoError(t, Put(path, nil))

	data, err := Get(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestPutReplacesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")

	require.NoError(t, Put(path, []byte("a much longer first version")))
	require.NoError(t, Put(path, []byte("short")))

	data, err := Get(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("short"), data)
}

func TestPutCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c", "deep.txt")

	require.NoError(t, Put(path, []byte("x")))

	assert.True(t, IsFile(path))
	assert.True(t, IsDirectory(filepath.Join(dir, "a", "b")))
}

func TestGetMissingFile(t *testing.T) {
	_, err := Get(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	_, err := Get(dir)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	require.NoError(t, Put(path, []byte("first")))
	require.NoError(t, Append(path, []byte("|second")))

	data, err := Get(path)
	require.NoError(t, err)
	assert.Equal(t, "first|second", string(data))
}

func TestAppendCreatesFileAndParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	require.NoError(t, Append(path, []byte("line")))

	data, err := Get(path)
	require.NoError(t, err)
	assert.Equal(t, "line", string(data))
}

func TestPrepend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")

	require.NoError(t, Put(path, []byte("body")))
	require.NoError(t, Prepend(path, []byte("header|")))

	data, err := Get(path)
	require.NoError(t, err)
	assert.Equal(t, "header|body", string(data))
}

func TestPrependMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh", "doc.txt")

	require.NoError(t, Prepend(path, []byte("only")))

	data, err := Get(path)
	require.NoError(t, err)
	assert.Equal(t, "only", string(data))
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, Put(a, []byte("a")))
	require.NoError(t, Put(b, []byte("b")))

	require.NoError(t, Delete(a, b))

	assert.False(t, Exists(a))
	assert.False(t, Exists(b))
}

func TestDeleteContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, Put(a, []byte("a")))

	err := Delete(filepath.Join(dir, "missing.txt"), a)
	assert.ErrorIs(t, err, ErrNotFound)

	// The existing file must still have been removed.
	assert.False(t, Exists(a))
}

func TestPutTruncatesOnlyUnderLock(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("advisory locks are a no-op here")
	}
	path := filepath.Join(t.TempDir(), "contended.txt")
	require.NoError(t, Put(path, []byte("ORIGINAL")))

	// Hold the lock the way a concurrent writer would, mid-write.
	f, err := os.OpenFile(path, os.O_WRONLY, DefaultFilePerm)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, lockFile(f))

	done := make(chan error, 1)
	go func() { done <- Put(path, []byte("NEW")) }()

	// While the lock is held the second writer must not have truncated
	// the file, only blocked.
	time.Sleep(50 * time.Millisecond)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ORIGINAL", string(data))

	require.NoError(t, unlockFile(f))
	require.NoError(t, <-done)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "NEW", string(data))
}

func TestWriteFailureSurfacesTypedError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	err := Put(filepath.Join(dir, "denied.txt"), []byte("x"))
	assert.ErrorIs(t, err, ErrPermission)
}
