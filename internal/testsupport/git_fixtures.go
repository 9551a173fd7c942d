package testsupport

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	gitExecutableNameConstant    = "git"
	fixtureFilePermissions       = 0o644
	fixtureDirectoryPermissions  = 0o755
	fixtureDefaultBranchConstant = "main"
	fixtureCommitMessageConstant = "fixture commit"
	fixtureAuthorNameConstant    = "Pending Fixture"
	fixtureAuthorEmailConstant   = "fixture@example.com"
	fixtureOriginRemoteConstant  = "origin"
)

// RequireGit skips the test when git is not on PATH.
func RequireGit(testInstance *testing.T) {
	testInstance.Helper()
	if _, lookupError := exec.LookPath(gitExecutableNameConstant); lookupError != nil {
		testInstance.Skip("git is not available")
	}
}

// RunGit runs git inside directory with an isolated configuration and returns its trimmed output.
func RunGit(testInstance *testing.T, directory string, arguments ...string) string {
	testInstance.Helper()

	fixedArguments := []string{
		"-c", "user.name=" + fixtureAuthorNameConstant,
		"-c", "user.email=" + fixtureAuthorEmailConstant,
		"-c", "commit.gpgsign=false",
		"-c", "init.defaultBranch=" + fixtureDefaultBranchConstant,
	}
	command := exec.Command(gitExecutableNameConstant, append(fixedArguments, arguments...)...)
	command.Dir = directory
	command.Env = append(
		os.Environ(),
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_CONFIG_GLOBAL="+os.DevNull,
		"GIT_TERMINAL_PROMPT=0",
	)

	output, runError := command.CombinedOutput()
	require.NoError(testInstance, runError, string(output))
	return strings.TrimSpace(string(output))
}

// InitRepository creates a repository at repositoryPath with one committed file.
func InitRepository(testInstance *testing.T, repositoryPath string) {
	testInstance.Helper()
	require.NoError(testInstance, os.MkdirAll(repositoryPath, fixtureDirectoryPermissions))
	RunGit(testInstance, repositoryPath, "init", "--quiet")
	CommitFile(testInstance, repositoryPath, "README.md", "fixture\n")
}

// WriteFile writes content to a file relative to repositoryPath without touching the index.
func WriteFile(testInstance *testing.T, repositoryPath string, relativePath string, content string) {
	testInstance.Helper()
	filePath := filepath.Join(repositoryPath, relativePath)
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(filePath), fixtureDirectoryPermissions))
	require.NoError(testInstance, os.WriteFile(filePath, []byte(content), fixtureFilePermissions))
}

// CommitFile writes, stages, and commits a file.
func CommitFile(testInstance *testing.T, repositoryPath string, relativePath string, content string) {
	testInstance.Helper()
	WriteFile(testInstance, repositoryPath, relativePath, content)
	RunGit(testInstance, repositoryPath, "add", relativePath)
	RunGit(testInstance, repositoryPath, "commit", "--quiet", "-m", fixtureCommitMessageConstant)
}

// CloneWithUpstream creates a bare origin from sourcePath and clones it to clonePath, so the
// clone's branch tracks origin/main.
func CloneWithUpstream(testInstance *testing.T, sourcePath string, barePath string, clonePath string) {
	testInstance.Helper()
	RunGit(testInstance, filepath.Dir(barePath), "clone", "--quiet", "--bare", sourcePath, barePath)
	RunGit(testInstance, filepath.Dir(clonePath), "clone", "--quiet", barePath, clonePath)
}

// Push pushes the current branch of repositoryPath to origin.
func Push(testInstance *testing.T, repositoryPath string) {
	testInstance.Helper()
	RunGit(testInstance, repositoryPath, "push", "--quiet", fixtureOriginRemoteConstant, "HEAD")
}
