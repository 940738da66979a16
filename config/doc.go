// Package config loads and validates the tollkit application configuration
// from tollkit.yml. Configuration is optional: every transformation falls
// back to the built-in default rate tables and separator.
package config
