// Package logging provides structured logging utilities shared by the CLI
// and the API server.
//
// It wraps the standard library slog package with project defaults: JSON
// output to stderr, environment-based level configuration (LOG_LEVEL),
// module/version context on every record, and source location tracking for
// debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("millwright", version)
//
//	    slog.Info("resolving speeds", "material", "Aluminum", "tool", "End Mill")
//	}
//
// Supported log levels (case-insensitive): DEBUG, INFO (default), WARN or
// WARNING, and ERROR. When LOG_LEVEL is not set, INFO is used.
package logging
