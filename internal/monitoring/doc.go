// Package monitoring provides Prometheus metrics for storaged.
//
// Exposed metric families:
//   - HTTP: request counts and latency by method/path/status
//   - Filesystem: operation counts and latency by operation/status
//   - I/O: cumulative bytes read and written
//   - System: uptime
//
// Middleware plugs into the Gin router; Timer wraps individual operations.
package monitoring
