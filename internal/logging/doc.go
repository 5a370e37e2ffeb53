// Package logging builds the slog loggers used by the cplcheck CLI and the
// ingestion layer.
//
// It owns the console and JSON handlers, maps configured level strings onto
// slog levels, and provides attribute helpers plus a context-aware helper
// that stamps each line with the validation run id. A no-op logger is
// available for tests and for library code called without a logger.
package logging
