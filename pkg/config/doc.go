// Package config handles configuration management for tagterm.
// It layers the embedded defaults, the user config file, a .env file and
// TAGTERM_* environment variables, in that order.
package config
