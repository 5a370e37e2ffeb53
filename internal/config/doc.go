// Package config loads, normalizes, and validates cplcheck configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours CPLCHECK_* environment overrides,
// optionally seeded from a .env file in the working directory.
//
// Always obtain settings through this package so the CLI receives sanitized
// paths, canonical log formats, and clear validation errors.
package config
