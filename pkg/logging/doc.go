// Package logging provides structured logging utilities for semver components.
//
// # Overview
//
// This package wraps the standard library slog package with shared defaults
// and conventions for consistent logging across the CLI and library. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("semver", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("parsing version", "input", "1.2.3-rc.1")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("semver", "v2.0.0", "debug")
//	logger.Info("sorting versions", "count", 12)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("semver", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug semver parse 1.2.3-rc.1
//	LOG_LEVEL=error semver sort 1.0.0 2.0.0
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "versions sorted",
//	    "module": "semver",
//	    "version": "v1.0.0",
//	    "count": 12
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "cli.runParse",
//	        "file": "parse.go",
//	        "line": 45
//	    },
//	    "msg": "parsed version",
//	    "module": "semver",
//	    "version": "v1.0.0"
//	}
//
// Logs never go to stdout, which is reserved for command output so the CLI
// stays pipe-friendly.
package logging
