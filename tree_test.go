package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureTree builds d/f1, d/f2, d/s/f3, d/s/t/f4 and returns d.
func fixtureTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, Put(filepath.Join(dir, "f1.txt"), []byte("1")))
	require.NoError(t, Put(filepath.Join(dir, "f2.txt"), []byte("2")))
	require.NoError(t, Put(filepath.Join(dir, "s", "f3.txt"), []byte("3")))
	require.NoError(t, Put(filepath.Join(dir, "s", "t", "f4.txt"), []byte("4")))
	return dir
}

func TestFilesAndDirectories(t *testing.T) {
	dir := fixtureTree(t)

	files, err := Files(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "f1.txt"),
		filepath.Join(dir, "f2.txt"),
	}, files)

	dirs, err := Directories(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{filepath.Join(dir, "s")}, dirs)
}

func TestFilesOnMissingDirectory(t *testing.T) {
	_, err := Files(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilesOnFileFails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, Put(file, []byte("x")))

	_, err := Files(file)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListingEmptyDirectoryReturnsEmptyNonNilSlices(t *testing.T) {
	dir := t.TempDir()

	files, err := Files(dir)
	require.NoError(t, err)
	assert.NotNil(t, files)
	assert.Empty(t, files)

	dirs, err := AllDirectories(dir)
	require.NoError(t, err)
	assert.NotNil(t, dirs)
	assert.Empty(t, dirs)
}

func TestAllFiles(t *testing.T) {
	dir := fixtureTree(t)

	files, err := AllFiles(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "f1.txt"),
		filepath.Join(dir, "f2.txt"),
		filepath.Join(dir, "s", "f3.txt"),
		filepath.Join(dir, "s", "t", "f4.txt"),
	}, files)
}

func TestAllDirectories(t *testing.T) {
	dir := fixtureTree(t)

	dirs, err := AllDirectories(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "s"),
		filepath.Join(dir, "s", "t"),
	}, dirs)
}

func TestAllFilesDoesNotFollowDirectorySymlinks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Put(filepath.Join(dir, "real", "f.txt"), []byte("x")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")))

	files, err := AllFiles(dir)
	require.NoError(t, err)

	// The symlink shows up as an entry but its target is not descended
	// into a second time.
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "real", "f.txt"),
		filepath.Join(dir, "link"),
	}, files)
}

func TestGlob(t *testing.T) {
	dir := fixtureTree(t)
	require.NoError(t, Put(filepath.Join(dir, "s", "notes.md"), []byte("md")))

	matches, err := Glob(dir, "**/*.txt")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "f1.txt"),
		filepath.Join(dir, "f2.txt"),
		filepath.Join(dir, "s", "f3.txt"),
		filepath.Join(dir, "s", "t", "f4.txt"),
	}, matches)
}

func TestMakeDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x", "y", "z")

	require.NoError(t, MakeDirectory(path, DefaultDirPerm))
	assert.True(t, IsDirectory(path))

	// Idempotent.
	require.NoError(t, MakeDirectory(path, DefaultDirPerm))
}

func TestMakeDirectoryOverFileConflicts(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, Put(file, []byte("x")))

	err := MakeDirectory(file, DefaultDirPerm)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteDirectory(t *testing.T) {
	dir := fixtureTree(t)

	require.NoError(t, DeleteDirectory(dir))

	assert.False(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "s", "t", "f4.txt")))
}

func TestDeleteDirectoryOnMissingPath(t *testing.T) {
	err := DeleteDirectory(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDirectoryWrapsRootRemovalFailure(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, Put(filepath.Join(locked, "f.txt"), []byte("x")))
	require.NoError(t, os.Chmod(locked, 0o555))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	err := DeleteDirectory(dir)

	// The file survives the clean and the root removal fails on the
	// non-empty tree; both failures come back typed and joined.
	assert.ErrorIs(t, err, ErrPermission)
	assert.ErrorContains(t, err, "delete directory")
	assert.True(t, Exists(dir))
}

func TestCleanDirectory(t *testing.T) {
	dir := fixtureTree(t)

	require.NoError(t, CleanDirectory(dir))

	assert.True(t, Exists(dir))
	files, err := Files(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
	dirs, err := Directories(dir)
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func TestCleanDirectoryAlreadyEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, CleanDirectory(dir))
	assert.True(t, Exists(dir))
}

func TestCleanDirectoryRemovesSymlinksWithoutFollowing(t *testing.T) {
	dir := t.TempDir()
	outside := t.TempDir()
	require.NoError(t, Put(filepath.Join(outside, "keep.txt"), []byte("x")))
	require.NoError(t, os.Symlink(outside, filepath.Join(dir, "link")))

	require.NoError(t, CleanDirectory(dir))

	assert.False(t, Exists(filepath.Join(dir, "link")))
	// The symlink target survives untouched.
	assert.True(t, IsFile(filepath.Join(outside, "keep.txt")))
}
