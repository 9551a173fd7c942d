// Package dependencies supplies production defaults for collaborators that commands accept as
// optional overrides.
package dependencies

import (
	"go.uber.org/zap"

	"github.com/temirov/pending/internal/execshell"
	"github.com/temirov/pending/internal/repos/discovery"
	"github.com/temirov/pending/internal/repos/filesystem"
	"github.com/temirov/pending/internal/vcs"
)

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing discovery.FileSystem) discovery.FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default that
// reports lifecycle events to observer.
func ResolveGitExecutor(existing vcs.GitExecutor, logger *zap.Logger, observer execshell.CommandEventObserver) (vcs.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutorWithObserver(logger, commandRunner, observer)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolveBackends returns the provided backends or the registered defaults bound to executor.
func ResolveBackends(existing []vcs.Backend, executor vcs.GitExecutor) []vcs.Backend {
	if len(existing) > 0 {
		return existing
	}
	return []vcs.Backend{vcs.GitBackend(executor)}
}
