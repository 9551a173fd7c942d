package vcs

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/pending/internal/execshell"
)

const (
	gitBackendNameConstant               = "git"
	gitMetadataDirectoryNameConstant     = ".git"
	gitDiffIndexSubcommandConstant       = "diff-index"
	gitDiffFilesSubcommandConstant       = "diff-files"
	gitLSFilesSubcommandConstant         = "ls-files"
	gitSymbolicRefSubcommandConstant     = "symbolic-ref"
	gitRevParseSubcommandConstant        = "rev-parse"
	gitForEachRefSubcommandConstant      = "for-each-ref"
	gitCachedFlagConstant                = "--cached"
	gitQuietFlagConstant                 = "--quiet"
	gitOthersFlagConstant                = "-o"
	gitExcludeStandardFlagConstant       = "--exclude-standard"
	gitUpstreamShortFormatFlagConstant   = "--format=%(upstream:short)"
	gitHeadReferenceConstant             = "HEAD"
	trailingWhitespaceCharactersConstant = " \t\r\n\v\f"
)

// GitBackend registers GitChecker for directories containing a .git directory.
func GitBackend(executor GitExecutor) Backend {
	return Backend{
		Name:                  gitBackendNameConstant,
		MetadataDirectoryName: gitMetadataDirectoryNameConstant,
		NewChecker: func(repositoryPath string) RepositoryChecker {
			return NewGitChecker(executor, repositoryPath)
		},
	}
}

// GitChecker runs git plumbing commands inside a single repository root.
type GitChecker struct {
	executor       GitExecutor
	repositoryPath string
}

// NewGitChecker binds a GitChecker to repositoryPath.
func NewGitChecker(executor GitExecutor, repositoryPath string) *GitChecker {
	return &GitChecker{executor: executor, repositoryPath: repositoryPath}
}

// probeResult is the outcome of one git invocation: whether it exited zero and what it printed.
type probeResult struct {
	succeeded bool
	output    string
}

// HasUncommitted reports whether the index differs from HEAD.
func (checker *GitChecker) HasUncommitted(executionContext context.Context) (bool, error) {
	result, probeError := checker.probe(executionContext, gitDiffIndexSubcommandConstant, gitCachedFlagConstant, gitQuietFlagConstant, gitHeadReferenceConstant)
	if probeError != nil {
		return false, probeError
	}
	return !result.succeeded, nil
}

// HasUnstaged reports whether the working tree differs from the index.
func (checker *GitChecker) HasUnstaged(executionContext context.Context) (bool, error) {
	result, probeError := checker.probe(executionContext, gitDiffFilesSubcommandConstant, gitQuietFlagConstant)
	if probeError != nil {
		return false, probeError
	}
	return !result.succeeded, nil
}

// HasUntracked reports whether git lists any untracked, non-ignored file. The exit status is ignored.
func (checker *GitChecker) HasUntracked(executionContext context.Context) (bool, error) {
	result, probeError := checker.probe(executionContext, gitLSFilesSubcommandConstant, gitOthersFlagConstant, gitExcludeStandardFlagConstant)
	if probeError != nil {
		return false, probeError
	}
	return len(result.output) > 0, nil
}

// HasUnpushed reports whether the checked-out branch points at a different commit than its upstream.
// A detached HEAD, a branch without upstream, or any unresolvable reference yields false.
func (checker *GitChecker) HasUnpushed(executionContext context.Context) (bool, error) {
	localReference, resolved, resolveError := checker.resolve(executionContext, gitSymbolicRefSubcommandConstant, gitHeadReferenceConstant)
	if resolveError != nil || !resolved {
		return false, resolveError
	}

	localRevision, resolved, resolveError := checker.resolve(executionContext, gitRevParseSubcommandConstant, localReference)
	if resolveError != nil || !resolved {
		return false, resolveError
	}

	upstreamReference, resolved, resolveError := checker.resolve(executionContext, gitForEachRefSubcommandConstant, gitUpstreamShortFormatFlagConstant, localReference)
	if resolveError != nil || !resolved {
		return false, resolveError
	}

	upstreamRevision, resolved, resolveError := checker.resolve(executionContext, gitRevParseSubcommandConstant, upstreamReference)
	if resolveError != nil || !resolved {
		return false, resolveError
	}

	return localRevision != upstreamRevision, nil
}

// resolve runs a query whose answer is its right-trimmed output. It reports false when the
// query exits non-zero or answers nothing.
func (checker *GitChecker) resolve(executionContext context.Context, arguments ...string) (string, bool, error) {
	result, probeError := checker.probe(executionContext, arguments...)
	if probeError != nil {
		return "", false, probeError
	}
	if !result.succeeded {
		return "", false, nil
	}
	answer := strings.TrimRight(result.output, trailingWhitespaceCharactersConstant)
	if len(answer) == 0 {
		return "", false, nil
	}
	return answer, true, nil
}

func (checker *GitChecker) probe(executionContext context.Context, arguments ...string) (probeResult, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: checker.repositoryPath,
	}

	executionResult, executionError := checker.executor.ExecuteGit(executionContext, commandDetails)
	if executionError == nil {
		return probeResult{succeeded: true, output: executionResult.StandardOutput}, nil
	}

	var commandFailure execshell.CommandFailedError
	if errors.As(executionError, &commandFailure) {
		return probeResult{succeeded: false, output: commandFailure.Result.StandardOutput}, nil
	}

	return probeResult{}, executionError
}
