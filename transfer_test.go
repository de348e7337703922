package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "sub", "dst.txt")
	require.NoError(t, Put(src, []byte("payload")))

	require.NoError(t, Copy(src, dst))

	assert.True(t, IsFile(src))
	data, err := Get(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestCopyMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := Copy(filepath.Join(dir, "nope.txt"), filepath.Join(dir, "dst.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCopyDirectorySourceFails(t *testing.T) {
	dir := t.TempDir()
	err := Copy(dir, filepath.Join(dir, "dst.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "archive", "dst.txt")
	require.NoError(t, Put(src, []byte("payload")))

	require.NoError(t, Move(src, dst))

	assert.False(t, Exists(src))
	data, err := Get(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestMoveMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := Move(filepath.Join(dir, "nope.txt"), filepath.Join(dir, "dst.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCopyDirectory(t *testing.T) {
	src := fixtureTree(t)
	dst := filepath.Join(t.TempDir(), "mirror")

	require.NoError(t, CopyDirectory(src, dst))

	data, err := Get(filepath.Join(dst, "s", "t", "f4.txt"))
	require.NoError(t, err)
	assert.Equal(t, "4", string(data))

	// Source is untouched.
	assert.True(t, IsFile(filepath.Join(src, "f1.txt")))

	srcFiles, err := AllFiles(src)
	require.NoError(t, err)
	dstFiles, err := AllFiles(dst)
	require.NoError(t, err)
	assert.Len(t, dstFiles, len(srcFiles))
}

func TestMoveDirectory(t *testing.T) {
	src := fixtureTree(t)
	dst := filepath.Join(t.TempDir(), "relocated")

	require.NoError(t, MoveDirectory(src, dst))

	assert.False(t, Exists(src))
	data, err := Get(filepath.Join(dst, "s", "f3.txt"))
	require.NoError(t, err)
	assert.Equal(t, "3", string(data))
}
