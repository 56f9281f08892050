// Package logging provides structured logging for basemaster.
//
// This package wraps a global zap logger. Logging is silent unless a level is
// given with --log-level or the BASEMASTER_LOG_LEVEL environment variable.
//
// # Outputs
//
// CLI commands log to stderr. The interactive UI owns the terminal, so it only
// logs to a file:
//
//	logging.Initialize("debug", "/home/me/.config/basemaster/basemaster.log")
//	defer logging.Sync()
//
// # Structured Logging
//
// Converter events carry structured fields:
//
//	logging.LogEdit(l, "hex", "1A", "accepted")
//	logging.LogBitOp(l, "shl", 0, 0x80000001, 0x00000002)
package logging
