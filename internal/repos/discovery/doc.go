// Package discovery walks directory trees, classifies repository roots by their metadata
// directory, and inspects each root without descending into it.
package discovery
