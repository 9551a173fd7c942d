package vcs

import (
	"context"

	"github.com/temirov/pending/internal/execshell"
)

// RepositoryChecker answers the four pending-work questions for one repository root.
// An error is returned only when the environment is broken (the VCS binary could not be
// spawned or waited on); every repository-level ambiguity resolves to false.
type RepositoryChecker interface {
	HasUncommitted(executionContext context.Context) (bool, error)
	HasUnstaged(executionContext context.Context) (bool, error)
	HasUntracked(executionContext context.Context) (bool, error)
	HasUnpushed(executionContext context.Context) (bool, error)
}

// GitExecutor exposes the subset of shell execution used by GitChecker.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// CheckerFactory binds a checker to a repository root.
type CheckerFactory func(repositoryPath string) RepositoryChecker

// Backend describes a version-control system recognized by its metadata directory.
type Backend struct {
	Name                  string
	MetadataDirectoryName string
	NewChecker            CheckerFactory
}
