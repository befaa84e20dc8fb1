// Package logging provides structured logging for vcamctl.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the entire application.
//
// # Features
//
//   - Text output for terminals (human-readable, the default)
//   - JSON output for machine consumption
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Configuration
//
// Logging is configured via the LoggingConfig in the config file:
//
//	logging:
//	  level: "warn"      # debug, info, warn, error
//	  format: "text"     # text, json
//	  output: "stderr"   # stderr, stdout
//
// Logs default to stderr at warn level so the tool's stdout stays clean
// for parseable command output.
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Warn("device path already registered", "path", path)
//	logger.Error("store open failed", "error", err)
package logging
