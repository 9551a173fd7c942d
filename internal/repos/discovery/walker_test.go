package discovery_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/pending/internal/pending"
	"github.com/temirov/pending/internal/repos/discovery"
	"github.com/temirov/pending/internal/repos/filesystem"
	"github.com/temirov/pending/internal/vcs"
)

const (
	testMetadataDirectoryNameConstant = ".git"
	testDirectoryPermissionsConstant  = 0o755
	testFilePermissionsConstant       = 0o644
)

type recordingReporter struct {
	findings []string
}

func (reporter *recordingReporter) Report(finding pending.Finding) error {
	reporter.findings = append(reporter.findings, finding.String())
	return nil
}

type fixedChecker struct {
	positive bool
	failure  error
}

func (checker fixedChecker) answer() (bool, error) {
	return checker.positive, checker.failure
}

func (checker fixedChecker) HasUncommitted(context.Context) (bool, error) { return checker.answer() }
func (checker fixedChecker) HasUnstaged(context.Context) (bool, error) { return checker.answer() }
func (checker fixedChecker) HasUntracked(context.Context) (bool, error) { return checker.answer() }
func (checker fixedChecker) HasUnpushed(context.Context) (bool, error) { return checker.answer() }

type recordingBackend struct {
	inspectedPaths []string
	positive       bool
	failure        error
}

func (backend *recordingBackend) backend() vcs.Backend {
	return vcs.Backend{
		Name:                  "git",
		MetadataDirectoryName: testMetadataDirectoryNameConstant,
		NewChecker: func(repositoryPath string) vcs.RepositoryChecker {
			backend.inspectedPaths = append(backend.inspectedPaths, repositoryPath)
			return fixedChecker{positive: backend.positive, failure: backend.failure}
		},
	}
}

type unreadableFileSystem struct {
	filesystem.OSFileSystem
	unreadablePath string
}

func (fileSystem unreadableFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	if path == fileSystem.unreadablePath {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	return fileSystem.OSFileSystem.ReadDir(path)
}

func createDirectories(testInstance *testing.T, rootDirectory string, relativePaths ...string) {
	testInstance.Helper()
	for _, relativePath := range relativePaths {
		require.NoError(testInstance, os.MkdirAll(filepath.Join(rootDirectory, relativePath), testDirectoryPermissionsConstant))
	}
}

func newWalker(testInstance *testing.T, configuration discovery.WalkerConfiguration) *discovery.RepositoryWalker {
	testInstance.Helper()
	if configuration.FileSystem == nil {
		configuration.FileSystem = filesystem.OSFileSystem{}
	}
	walker, creationError := discovery.NewRepositoryWalker(configuration)
	require.NoError(testInstance, creationError)
	return walker
}

func TestRepositoryWalkerClassifiesRepositoryRoots(testInstance *testing.T) {
	testCases := []struct {
		name              string
		directories       []string
		files             []string
		pathSuffix        string
		expectedInspected []string
	}{
		{
			name:              "tree_without_repositories",
			directories:       []string{"x/y/z", "w"},
			expectedInspected: nil,
		},
		{
			name:              "nested_roots_are_found_without_descending_into_repositories",
			directories:       []string{"a/.git", "a/vendor/inner/.git", "b/c/.git", "b/d"},
			expectedInspected: []string{"/a", "/b/c"},
		},
		{
			name:              "scanned_path_is_itself_a_repository",
			directories:       []string{".git", "nested/.git"},
			expectedInspected: []string{""},
		},
		{
			name:              "metadata_file_does_not_mark_a_root",
			directories:       []string{"worktree/sub/.git"},
			files:             []string{"worktree/.git"},
			expectedInspected: []string{"/worktree/sub"},
		},
		{
			name:              "trailing_separator_is_not_duplicated",
			directories:       []string{"a/.git"},
			pathSuffix:        "/",
			expectedInspected: []string{"/a"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			rootDirectory := testInstance.TempDir()
			createDirectories(testInstance, rootDirectory, testCase.directories...)
			for _, relativePath := range testCase.files {
				require.NoError(testInstance, os.WriteFile(filepath.Join(rootDirectory, relativePath), []byte("gitdir: elsewhere\n"), testFilePermissionsConstant))
			}

			backend := &recordingBackend{}
			reporter := &recordingReporter{}
			walker := newWalker(testInstance, discovery.WalkerConfiguration{Backends: []vcs.Backend{backend.backend()}, Reporter: reporter})

			walkError := walker.Walk(context.Background(), rootDirectory+testCase.pathSuffix, pending.AllChecks)
			require.NoError(testInstance, walkError)

			expectedInspected := make([]string, 0, len(testCase.expectedInspected))
			for _, relativePath := range testCase.expectedInspected {
				expectedInspected = append(expectedInspected, rootDirectory+relativePath)
			}
			require.ElementsMatch(testInstance, expectedInspected, backend.inspectedPaths)
			require.Empty(testInstance, reporter.findings)
		})
	}
}

func TestRepositoryWalkerReportsFindingsWithCallerPathPrefix(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	createDirectories(testInstance, rootDirectory, "repo/.git")

	backend := &recordingBackend{positive: true}
	reporter := &recordingReporter{}
	walker := newWalker(testInstance, discovery.WalkerConfiguration{Backends: []vcs.Backend{backend.backend()}, Reporter: reporter})

	set := pending.NewCheckSet(pending.CheckUntracked, pending.CheckUnpushed)
	require.NoError(testInstance, walker.Walk(context.Background(), rootDirectory, set))
	require.Equal(testInstance, []string{
		rootDirectory + "/repo has untracked changes",
		rootDirectory + "/repo has unpushed changes",
	}, reporter.findings)
}

func TestRepositoryWalkerEmptyCheckSetReportsNothing(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	createDirectories(testInstance, rootDirectory, "repo/.git")

	backend := &recordingBackend{positive: true}
	reporter := &recordingReporter{}
	walker := newWalker(testInstance, discovery.WalkerConfiguration{Backends: []vcs.Backend{backend.backend()}, Reporter: reporter})

	require.NoError(testInstance, walker.Walk(context.Background(), rootDirectory, pending.NewCheckSet()))
	require.Equal(testInstance, []string{rootDirectory + "/repo"}, backend.inspectedPaths)
	require.Empty(testInstance, reporter.findings)
}

func TestRepositoryWalkerTreatsPlainFileAsLeaf(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	filePath := filepath.Join(rootDirectory, "notes.txt")
	require.NoError(testInstance, os.WriteFile(filePath, []byte("notes"), testFilePermissionsConstant))

	backend := &recordingBackend{positive: true}
	reporter := &recordingReporter{}
	walker := newWalker(testInstance, discovery.WalkerConfiguration{Backends: []vcs.Backend{backend.backend()}, Reporter: reporter})

	require.NoError(testInstance, walker.Walk(context.Background(), filePath, pending.AllChecks))
	require.Empty(testInstance, backend.inspectedPaths)
	require.Empty(testInstance, reporter.findings)
}

func TestRepositoryWalkerDoesNotFollowSymlinkedDirectories(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	outsideDirectory := testInstance.TempDir()
	createDirectories(testInstance, outsideDirectory, "repo/.git")
	if symlinkError := os.Symlink(filepath.Join(outsideDirectory, "repo"), filepath.Join(rootDirectory, "link")); symlinkError != nil {
		testInstance.Skipf("symlinks unsupported: %v", symlinkError)
	}

	backend := &recordingBackend{}
	walker := newWalker(testInstance, discovery.WalkerConfiguration{Backends: []vcs.Backend{backend.backend()}, Reporter: &recordingReporter{}})

	require.NoError(testInstance, walker.Walk(context.Background(), rootDirectory, pending.AllChecks))
	require.Empty(testInstance, backend.inspectedPaths)
}

func TestRepositoryWalkerFailsOnMissingPath(testInstance *testing.T) {
	missingPath := filepath.Join(testInstance.TempDir(), "missing")
	walker := newWalker(testInstance, discovery.WalkerConfiguration{Reporter: &recordingReporter{}})

	walkError := walker.Walk(context.Background(), missingPath, pending.AllChecks)

	var statFailure discovery.PathStatError
	require.ErrorAs(testInstance, walkError, &statFailure)
	require.Equal(testInstance, missingPath, statFailure.Path)
	require.ErrorIs(testInstance, walkError, fs.ErrNotExist)
	require.Equal(testInstance, "cannot stat "+missingPath+": no such file or directory", walkError.Error())
}

func TestRepositoryWalkerStopsAtFirstInspectionFailure(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	createDirectories(testInstance, rootDirectory, "a/.git", "b/.git")

	inspectionFailure := errors.New("spawn failed")
	backend := &recordingBackend{failure: inspectionFailure}
	walker := newWalker(testInstance, discovery.WalkerConfiguration{Backends: []vcs.Backend{backend.backend()}, Reporter: &recordingReporter{}})

	walkError := walker.Walk(context.Background(), rootDirectory, pending.AllChecks)
	require.ErrorIs(testInstance, walkError, inspectionFailure)
	require.Len(testInstance, backend.inspectedPaths, 1)
}

func TestRepositoryWalkerUnreadableDirectory(testInstance *testing.T) {
	testCases := []struct {
		name              string
		skipUnreadable    bool
		expectError       bool
		expectedInspected []string
		expectedWarning   string
	}{
		{
			name:              "aborts_by_default",
			skipUnreadable:    false,
			expectError:       true,
			expectedInspected: nil,
		},
		{
			name:              "warns_and_continues_when_skipping",
			skipUnreadable:    true,
			expectError:       false,
			expectedInspected: []string{"/b/repo"},
			expectedWarning:   "warning: cannot list %s/a: permission denied\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			rootDirectory := testInstance.TempDir()
			createDirectories(testInstance, rootDirectory, "a/repo/.git", "b/repo/.git")

			observedCore, observedLogs := observer.New(zapcore.DebugLevel)
			warnings := &bytes.Buffer{}
			backend := &recordingBackend{}
			walker := newWalker(testInstance, discovery.WalkerConfiguration{
				FileSystem:     unreadableFileSystem{unreadablePath: rootDirectory + "/a"},
				Backends:       []vcs.Backend{backend.backend()},
				Reporter:       &recordingReporter{},
				WarningWriter:  warnings,
				Logger:         zap.New(observedCore),
				SkipUnreadable: testCase.skipUnreadable,
			})

			walkError := walker.Walk(context.Background(), rootDirectory, pending.AllChecks)

			expectedInspected := make([]string, 0, len(testCase.expectedInspected))
			for _, relativePath := range testCase.expectedInspected {
				expectedInspected = append(expectedInspected, rootDirectory+relativePath)
			}
			require.ElementsMatch(testInstance, expectedInspected, backend.inspectedPaths)

			if testCase.expectError {
				var listFailure discovery.DirectoryListError
				require.ErrorAs(testInstance, walkError, &listFailure)
				require.Equal(testInstance, rootDirectory+"/a", listFailure.Path)
				require.ErrorIs(testInstance, walkError, fs.ErrPermission)
				require.Empty(testInstance, warnings.String())
				return
			}

			require.NoError(testInstance, walkError)
			require.Equal(testInstance, fmt.Sprintf(testCase.expectedWarning, rootDirectory), warnings.String())
			require.Equal(testInstance, 1, observedLogs.FilterMessage("skipping unreadable directory").Len())
		})
	}
}

func TestRepositoryWalkerHonorsCancellation(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	createDirectories(testInstance, rootDirectory, "a/.git")

	backend := &recordingBackend{}
	walker := newWalker(testInstance, discovery.WalkerConfiguration{Backends: []vcs.Backend{backend.backend()}, Reporter: &recordingReporter{}})

	cancelledContext, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(testInstance, walker.Walk(cancelledContext, rootDirectory, pending.AllChecks), context.Canceled)
	require.Empty(testInstance, backend.inspectedPaths)
}

func TestNewRepositoryWalkerValidatesConfiguration(testInstance *testing.T) {
	_, missingFileSystemError := discovery.NewRepositoryWalker(discovery.WalkerConfiguration{Reporter: &recordingReporter{}})
	require.ErrorIs(testInstance, missingFileSystemError, discovery.ErrFileSystemNotConfigured)

	_, missingReporterError := discovery.NewRepositoryWalker(discovery.WalkerConfiguration{FileSystem: filesystem.OSFileSystem{}})
	require.ErrorIs(testInstance, missingReporterError, discovery.ErrFindingReporterNotConfigured)
}
