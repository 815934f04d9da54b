// Package logging assembles structured slog loggers and formatting helpers used
// across reelplan.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so stage code can tag log lines
// with run IDs, stages, and correlation IDs. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Logs go to stderr so command output on stdout stays machine readable.
package logging
