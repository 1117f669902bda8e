// Package cli parses command-line arguments into the application
// configuration.
package cli
