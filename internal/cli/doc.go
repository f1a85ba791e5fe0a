// Package cli parses command-line arguments and environment overrides into
// the application configuration.
package cli
