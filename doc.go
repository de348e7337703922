// Package storage provides common filesystem operations as a flat set of
// stateless functions over the operating system's primitives.
//
// The operations are grouped into families:
//   - classifiers: Exists, IsFile, IsDirectory, IsWritable, Type, Extension, Name
//   - content: Get, Put, Append, Prepend, Delete
//   - tree: Files, Directories, AllFiles, AllDirectories, Glob,
//     MakeDirectory, CleanDirectory, DeleteDirectory
//   - transfer: Copy, Move, CopyDirectory, MoveDirectory
//   - metadata: Size, LastModified, MimeType, TotalSize, SizeHuman, Hash
//   - formats: GetJSON, PutJSON, GetYAML, PutYAML, GetTOML, PutTOML
//
// Every call re-queries the OS; nothing is cached between calls, so there is
// no staleness to invalidate and no consistency guarantee across calls.
// Put, Append and Prepend hold an exclusive advisory lock for the duration
// of the write to serialize concurrent writers to the same path.
//
// Failures come back as typed errors matchable with errors.Is (ErrNotFound,
// ErrPermission, ErrConflict, ErrEnumeration) and are additionally reported
// as warnings through an injectable logger, see SetLogger. The warnings are
// observability only; callers must check the returned error.
//
// Example Usage:
//
//	if err := storage.Put("notes/today.txt", []byte("hello")); err != nil {
//	    return err
//	}
//	data, err := storage.Get("notes/today.txt")
package storage
