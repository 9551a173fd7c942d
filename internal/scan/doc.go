// Package scan implements the pending-work scan behind the CLI.
//
// CommandBuilder wires the cobra command and its check-selection flags, Service walks each
// requested path in order, and Configuration carries the persisted scan settings.
package scan
