// Package config loads, normalizes, and validates convcheck configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML or YAML files, and honours environment fallbacks such as
// CONVCHECK_INPUT_DIR and NO_COLOR. The Config type gathers the directory
// pair, matching rules, report options, and logging settings in one place.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical enum values, and clear validation errors.
package config
