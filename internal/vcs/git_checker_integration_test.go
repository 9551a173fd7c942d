package vcs_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/pending/internal/execshell"
	"github.com/temirov/pending/internal/testsupport"
	"github.com/temirov/pending/internal/vcs"
)

type pendingState struct {
	uncommitted bool
	unstaged    bool
	untracked   bool
	unpushed    bool
}

func TestGitCheckerAgainstRealRepositories(testInstance *testing.T) {
	testsupport.RequireGit(testInstance)

	testCases := []struct {
		name     string
		prepare  func(testInstance *testing.T, workspace string) string
		expected pendingState
	}{
		{
			name: "clean_repository",
			prepare: func(testInstance *testing.T, workspace string) string {
				repositoryPath := filepath.Join(workspace, "clean")
				testsupport.InitRepository(testInstance, repositoryPath)
				return repositoryPath
			},
			expected: pendingState{},
		},
		{
			name: "untracked_file",
			prepare: func(testInstance *testing.T, workspace string) string {
				repositoryPath := filepath.Join(workspace, "untracked")
				testsupport.InitRepository(testInstance, repositoryPath)
				testsupport.WriteFile(testInstance, repositoryPath, "notes.txt", "draft\n")
				return repositoryPath
			},
			expected: pendingState{untracked: true},
		},
		{
			name: "ignored_file_is_not_untracked",
			prepare: func(testInstance *testing.T, workspace string) string {
				repositoryPath := filepath.Join(workspace, "ignored")
				testsupport.InitRepository(testInstance, repositoryPath)
				testsupport.CommitFile(testInstance, repositoryPath, ".gitignore", "*.log\n")
				testsupport.WriteFile(testInstance, repositoryPath, "build.log", "output\n")
				return repositoryPath
			},
			expected: pendingState{},
		},
		{
			name: "staged_change",
			prepare: func(testInstance *testing.T, workspace string) string {
				repositoryPath := filepath.Join(workspace, "staged")
				testsupport.InitRepository(testInstance, repositoryPath)
				testsupport.WriteFile(testInstance, repositoryPath, "README.md", "changed\n")
				testsupport.RunGit(testInstance, repositoryPath, "add", "README.md")
				return repositoryPath
			},
			expected: pendingState{uncommitted: true},
		},
		{
			name: "unstaged_change",
			prepare: func(testInstance *testing.T, workspace string) string {
				repositoryPath := filepath.Join(workspace, "unstaged")
				testsupport.InitRepository(testInstance, repositoryPath)
				testsupport.WriteFile(testInstance, repositoryPath, "README.md", "changed\n")
				return repositoryPath
			},
			expected: pendingState{unstaged: true},
		},
		{
			name: "commit_ahead_of_upstream",
			prepare: func(testInstance *testing.T, workspace string) string {
				sourcePath := filepath.Join(workspace, "source")
				clonePath := filepath.Join(workspace, "clone")
				testsupport.InitRepository(testInstance, sourcePath)
				testsupport.CloneWithUpstream(testInstance, sourcePath, filepath.Join(workspace, "origin.git"), clonePath)
				testsupport.CommitFile(testInstance, clonePath, "feature.txt", "feature\n")
				return clonePath
			},
			expected: pendingState{unpushed: true},
		},
		{
			name: "pushed_commit",
			prepare: func(testInstance *testing.T, workspace string) string {
				sourcePath := filepath.Join(workspace, "source")
				clonePath := filepath.Join(workspace, "clone")
				testsupport.InitRepository(testInstance, sourcePath)
				testsupport.CloneWithUpstream(testInstance, sourcePath, filepath.Join(workspace, "origin.git"), clonePath)
				testsupport.CommitFile(testInstance, clonePath, "feature.txt", "feature\n")
				testsupport.Push(testInstance, clonePath)
				return clonePath
			},
			expected: pendingState{},
		},
		{
			name: "detached_head_with_upstream",
			prepare: func(testInstance *testing.T, workspace string) string {
				sourcePath := filepath.Join(workspace, "source")
				clonePath := filepath.Join(workspace, "clone")
				testsupport.InitRepository(testInstance, sourcePath)
				testsupport.CloneWithUpstream(testInstance, sourcePath, filepath.Join(workspace, "origin.git"), clonePath)
				testsupport.CommitFile(testInstance, clonePath, "feature.txt", "feature\n")
				testsupport.RunGit(testInstance, clonePath, "checkout", "--quiet", "--detach")
				return clonePath
			},
			expected: pendingState{},
		},
		{
			name: "branch_without_upstream",
			prepare: func(testInstance *testing.T, workspace string) string {
				repositoryPath := filepath.Join(workspace, "local")
				testsupport.InitRepository(testInstance, repositoryPath)
				testsupport.CommitFile(testInstance, repositoryPath, "feature.txt", "feature\n")
				return repositoryPath
			},
			expected: pendingState{},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			repositoryPath := testCase.prepare(testInstance, testInstance.TempDir())

			executor, creationError := execshell.NewShellExecutor(zap.NewNop(), execshell.NewOSCommandRunner())
			require.NoError(testInstance, creationError)
			checker := vcs.NewGitChecker(executor, repositoryPath)
			executionContext := context.Background()

			uncommitted, uncommittedError := checker.HasUncommitted(executionContext)
			require.NoError(testInstance, uncommittedError)
			unstaged, unstagedError := checker.HasUnstaged(executionContext)
			require.NoError(testInstance, unstagedError)
			untracked, untrackedError := checker.HasUntracked(executionContext)
			require.NoError(testInstance, untrackedError)
			unpushed, unpushedError := checker.HasUnpushed(executionContext)
			require.NoError(testInstance, unpushedError)

			require.Equal(testInstance, testCase.expected, pendingState{
				uncommitted: uncommitted,
				unstaged:    unstaged,
				untracked:   untracked,
				unpushed:    unpushed,
			})
		})
	}
}
