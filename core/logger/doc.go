// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for interactive (console) and
// machine-readable (json) use. Diagnostics default to stdout so that the
// per-run notices and the attendance figures end up in the same stream.
//
// # Run Scoping
//
// WithRunID attaches a run identifier to the logger, so that all lines emitted
// while reconciling one pair of lists can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//   - Output: stdout, stderr or a file path
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Loaded default config file")
package logger
