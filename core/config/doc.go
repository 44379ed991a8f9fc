// Package config loads the application configuration from environment
// variables (optionally seeded from a .env file) into per-package partial
// configs, with defaults declared through struct tags.
package config
