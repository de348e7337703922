// Package server provides the HTTP surface of storaged.
//
// The router exposes the storage library's operations over JSON:
//   - POST /fs/read, /fs/write, /fs/append, /fs/prepend, /fs/delete
//   - POST /fs/mkdir, /fs/copy, /fs/move, /fs/clean, /fs/rmdir
//   - GET  /fs/list, /fs/walk, /fs/stat, /fs/mime
//   - GET  /health, /metrics
//
// Request paths are confined beneath the configured storage root when one is
// set; traversal out of the root is rejected. Typed library errors map to
// HTTP statuses (not found 404, permission 403, conflict 409).
package server
