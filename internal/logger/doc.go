// Package logger provides logging facilities for the dailylog application.
//
// It keeps two audiences apart: the person or scheduler running dailylog,
// who sees short prefixed messages on stdout and stderr, and whoever is
// debugging a run, who reads structured log/slog records.
//
// # Core Components
//
// - Logger: The main interface for logging used throughout the application
// - DefaultLogger: Standard implementation backed by log/slog
//
// # Log Levels
//
// - Info, Debug: debug log only
// - InfoToUser, StatusMessage: stdout, hidden by quiet mode
// - Warning: stdout unless quiet
// - WarningToUser, Success: stdout, always shown
// - Error: stderr, always shown
//
// # Structured Records
//
// With debug enabled, records go to the debug log file as slog text, or to
// stderr through a clog console handler when no file is configured. Every
// record carries the run_id of the invocation. Struct fields tagged
// `masq:"secret"` are redacted before they are written.
//
// # Usage
//
//	log := logger.New(logger.Options{Debug: true, LogFile: "/tmp/dailylog.log", RunID: id})
//	defer log.Close()
//
//	log.Debug("git command", "args", args, "exit_code", code)
//	log.InfoToUser("Generated entry for %s", key)
//	log.Success("Committed: %s", message)
//
// # Thread Safety
//
// The DefaultLogger implementation is safe for concurrent use by multiple
// goroutines.
package logger
