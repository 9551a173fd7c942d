// Package cli constructs the pending command-line interface, wiring the scan command,
// configuration loader, and structured logging, and mapping failures to process exit codes.
package cli
