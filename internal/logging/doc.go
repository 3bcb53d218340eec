// Package logging builds slog loggers for the CLI and the render session.
// Console output is a compact single-line format keyed by component; the json
// format emits standard slog JSON with lowercase levels and RFC3339 UTC
// timestamps.
package logging
