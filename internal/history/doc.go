// Package history keeps a SQLite ledger of completed renders so the CLI can
// list what has been generated and where it went.
package history
