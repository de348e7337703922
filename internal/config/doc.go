// Package config provides 12-factor configuration management for storaged.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Storage: root directory confinement for request paths
//   - Logging: log level and output format
//   - CORS: allowed origins
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Listening on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST, STORAGE_ROOT
//   - LOG_LEVEL, LOG_DEV
//   - CORS_ORIGINS
package config
