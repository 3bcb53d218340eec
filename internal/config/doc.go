// Package config loads, normalizes, and validates tickdown configuration.
//
// Configuration comes from a TOML file (~/.config/tickdown/config.toml or a
// project-local tickdown.toml); missing files fall back to repository
// defaults. Render geometry is clamped to its documented bounds rather than
// rejected, so a config file can never produce an unrenderable canvas.
package config
