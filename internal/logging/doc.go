// Package logging provides structured logging using uber/zap.
//
// Two modes are offered:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for human readability
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("server starting", zap.String("port", "8090"))
//	logger.Error("write failed", zap.Error(err))
package logging
