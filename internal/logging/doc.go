// Package logging provides structured logging for plantdeck.
//
// This package wraps a global zap logger with convenience functions. It is
// silent by default: nothing is written unless a level is requested with
// --log-level or PLANTDECK_LOG_LEVEL.
//
// # Log Levels
//
//   - Debug: every catalog request and response (request id, URL, status, elapsed)
//   - Info: lifecycle events (program start, category selected)
//   - Warn: failed requests, non-2xx responses, missing API key
//   - Error: unexpected failures
//
// # Output
//
// Subcommands log to stderr. The interactive browser owns the terminal, so
// it only logs when an output file is given:
//
//	if err := logging.Initialize("debug", "/tmp/plantdeck.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// API keys are never logged. Request URLs are logged without query strings.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
