package scan

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/pending/internal/pending"
)

const (
	commandUseConstant            = "pending [-c] [-t] [-s] [-p] [-a] [path...]"
	commandShortDescription       = "List repositories with pending work"
	commandLongDescription        = "pending walks each path, finds git repositories, and prints one line per repository and kind of pending work: uncommitted staged changes, untracked files, unstaged changes, or commits not pushed to the upstream branch. Repositories are not descended into. With no path the current directory is scanned."
	flagUncommittedName           = "uncommitted"
	flagUncommittedShorthand      = "c"
	flagUncommittedDescription    = "list repositories with uncommitted changes"
	flagUntrackedName             = "untracked"
	flagUntrackedShorthand        = "t"
	flagUntrackedDescription      = "list repositories with untracked changes"
	flagUnstagedName              = "unstaged"
	flagUnstagedShorthand         = "s"
	flagUnstagedDescription       = "list repositories with unstaged changes"
	flagUnpushedName              = "unpushed"
	flagUnpushedShorthand         = "p"
	flagUnpushedDescription       = "list repositories with unpushed changes"
	flagAllName                   = "all"
	flagAllShorthand              = "a"
	flagAllDescription            = "list repositories with any pending work"
	flagSkipUnreadableName        = "skip-unreadable"
	flagSkipUnreadableDescription = "warn about unreadable directories and keep scanning instead of failing"
	defaultScanPathConstant       = "."
	scanStartedMessageConstant    = "scanning path"
	scanFinishedMessageConstant   = "scan finished"
	logFieldPathConstant          = "path"
	logFieldChecksConstant        = "checks"
	logFieldPathCountConstant     = "path_count"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// HumanReadableLoggingProvider reports whether console-style command tracing is enabled.
type HumanReadableLoggingProvider func() bool

// ConfigurationProvider supplies the loaded scan configuration.
type ConfigurationProvider func() Configuration

// PathExpander rewrites user-supplied paths, for example expanding "~".
type PathExpander interface {
	ExpandAll(candidatePaths []string) []string
}

// RepositoryWalker scans one path.
type RepositoryWalker interface {
	Walk(executionContext context.Context, path string, set pending.CheckSet) error
}

// CommandOptions captures one scan invocation.
type CommandOptions struct {
	Paths  []string
	Checks pending.CheckSet
}
