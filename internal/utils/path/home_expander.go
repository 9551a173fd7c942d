// Package pathutils resolves user-supplied scan roots.
package pathutils

import (
	"os"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant        = "~"
	forwardSlashSymbolConstant = "/"
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander replaces a leading "~" or "~/" with the home directory. Other user forms such as
// "~alice" are left alone. The remainder of the path is appended verbatim so reported paths keep
// the caller's spelling after the home prefix.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &HomeExpander{homeDirectoryProvider: provider}
}

// Expand resolves a leading home shortcut. Paths without one, or an unresolvable home
// directory, are returned unchanged.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if expander == nil || !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath
	}

	remainder := strings.TrimPrefix(candidatePath, tildeSymbolConstant)
	if len(remainder) > 0 && !strings.HasPrefix(remainder, forwardSlashSymbolConstant) && !strings.HasPrefix(remainder, string(os.PathSeparator)) {
		return candidatePath
	}

	homeDirectory := expander.resolveHomeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}
	return strings.TrimSuffix(homeDirectory, string(os.PathSeparator)) + remainder
}

// ExpandAll expands every path, preserving order.
func (expander *HomeExpander) ExpandAll(candidatePaths []string) []string {
	expanded := make([]string, 0, len(candidatePaths))
	for _, candidatePath := range candidatePaths {
		expanded = append(expanded, expander.Expand(candidatePath))
	}
	return expanded
}

func (expander *HomeExpander) resolveHomeDirectory() string {
	expander.initializationGuard.Do(func() {
		expander.homeDirectory, expander.homeDirectoryError = expander.homeDirectoryProvider()
	})
	if expander.homeDirectoryError != nil {
		return ""
	}
	return expander.homeDirectory
}
