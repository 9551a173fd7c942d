package discovery

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/pending/internal/pending"
	"github.com/temirov/pending/internal/vcs"
)

const (
	childPathSeparatorConstant                 = "/"
	unreadableDirectoryWarningTemplateConstant = "warning: %v\n"
	repositoryDetectedMessageConstant          = "repository detected"
	directoryEnteredMessageConstant            = "scanning directory"
	directorySkippedMessageConstant            = "skipping unreadable directory"
	pathFieldNameConstant                      = "path"
	backendFieldNameConstant                   = "backend"
	checksFieldNameConstant                    = "checks"
)

// FileSystem exposes the read-only operations the walker needs.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
}

// FindingReporter receives findings as they are discovered.
type FindingReporter interface {
	Report(finding pending.Finding) error
}

// WalkerConfiguration collects the collaborators of a RepositoryWalker.
type WalkerConfiguration struct {
	FileSystem     FileSystem
	Backends       []vcs.Backend
	Reporter       FindingReporter
	WarningWriter  io.Writer
	Logger         *zap.Logger
	SkipUnreadable bool
}

// RepositoryWalker recursively scans paths for repository roots and inspects each one.
type RepositoryWalker struct {
	fileSystem     FileSystem
	backends       []vcs.Backend
	reporter       FindingReporter
	warningWriter  io.Writer
	logger         *zap.Logger
	skipUnreadable bool
}

// NewRepositoryWalker validates configuration and constructs a walker.
func NewRepositoryWalker(configuration WalkerConfiguration) (*RepositoryWalker, error) {
	if configuration.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	if configuration.Reporter == nil {
		return nil, ErrFindingReporterNotConfigured
	}

	warningWriter := configuration.WarningWriter
	if warningWriter == nil {
		warningWriter = io.Discard
	}
	logger := configuration.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	backends := make([]vcs.Backend, len(configuration.Backends))
	copy(backends, configuration.Backends)

	return &RepositoryWalker{
		fileSystem:     configuration.FileSystem,
		backends:       backends,
		reporter:       configuration.Reporter,
		warningWriter:  warningWriter,
		logger:         logger,
		skipUnreadable: configuration.SkipUnreadable,
	}, nil
}

// Walk scans path. A repository root is inspected for the checks in set and never descended
// into; any other directory is scanned child by child in listing order. Plain files are leaves.
// The first failure stops the walk.
func (walker *RepositoryWalker) Walk(executionContext context.Context, path string, set pending.CheckSet) error {
	if contextError := executionContext.Err(); contextError != nil {
		return contextError
	}

	pathInfo, statError := walker.fileSystem.Stat(path)
	if statError != nil {
		return PathStatError{Path: path, Cause: statError}
	}

	if backend, detected := walker.detectBackend(path); detected {
		walker.logger.Debug(
			repositoryDetectedMessageConstant,
			zap.String(pathFieldNameConstant, path),
			zap.String(backendFieldNameConstant, backend.Name),
			zap.Stringer(checksFieldNameConstant, set),
		)
		return pending.Inspect(executionContext, backend.NewChecker(path), path, set, walker.reporter.Report)
	}

	if !pathInfo.IsDir() {
		return nil
	}

	walker.logger.Debug(directoryEnteredMessageConstant, zap.String(pathFieldNameConstant, path))
	entries, listError := walker.fileSystem.ReadDir(path)
	if listError != nil {
		if !walker.skipUnreadable {
			return DirectoryListError{Path: path, Cause: listError}
		}
		walker.logger.Warn(directorySkippedMessageConstant, zap.String(pathFieldNameConstant, path), zap.Error(listError))
		fmt.Fprintf(walker.warningWriter, unreadableDirectoryWarningTemplateConstant, DirectoryListError{Path: path, Cause: listError})
		return nil
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if walkError := walker.Walk(executionContext, joinChildPath(path, entry.Name()), set); walkError != nil {
			return walkError
		}
	}
	return nil
}

func (walker *RepositoryWalker) detectBackend(path string) (vcs.Backend, bool) {
	for _, backend := range walker.backends {
		metadataInfo, statError := walker.fileSystem.Stat(joinChildPath(path, backend.MetadataDirectoryName))
		if statError == nil && metadataInfo.IsDir() {
			return backend, true
		}
	}
	return vcs.Backend{}, false
}

// joinChildPath concatenates without cleaning so reported paths keep the caller's spelling.
func joinChildPath(parentPath string, childName string) string {
	if strings.HasSuffix(parentPath, childPathSeparatorConstant) {
		return parentPath + childName
	}
	return parentPath + childPathSeparatorConstant + childName
}
