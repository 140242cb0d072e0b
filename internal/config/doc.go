// Package config loads, normalizes, and validates Setlist configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SETLIST_LIBRARY_DIR. The Config type centralizes every knob the CLI needs,
// allowing library/playlist directories and template search paths to be
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
