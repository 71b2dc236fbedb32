// Package logging assembles the structured slog loggers used by convcheck.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers that tag every line of a run with its
// run ID. Logs default to stderr so stdout carries only the report. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
