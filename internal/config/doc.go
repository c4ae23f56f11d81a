// Package config loads, normalizes, and validates photostrip configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// PHOTOSTRIP_FONT. A .env file in the working directory is applied to the
// process environment before overrides are read.
//
// Always obtain settings through this package so the pipeline receives
// absolute paths, canonical log formats, and clear validation errors.
package config
