package discovery

import (
	"errors"
	"fmt"
	"io/fs"
)

const (
	pathStatErrorTemplateConstant      = "cannot stat %s: %v"
	directoryListErrorTemplateConstant = "cannot list %s: %v"
)

var (
	// ErrFileSystemNotConfigured indicates the walker was built without a file system.
	ErrFileSystemNotConfigured = errors.New("file system not configured")
	// ErrFindingReporterNotConfigured indicates the walker was built without a reporter.
	ErrFindingReporterNotConfigured = errors.New("finding reporter not configured")
)

// PathStatError reports a path that could not be statted.
type PathStatError struct {
	Path  string
	Cause error
}

func (failure PathStatError) Error() string {
	return fmt.Sprintf(pathStatErrorTemplateConstant, failure.Path, describeCause(failure.Cause))
}

func (failure PathStatError) Unwrap() error {
	return failure.Cause
}

// DirectoryListError reports a directory whose entries could not be read.
type DirectoryListError struct {
	Path  string
	Cause error
}

func (failure DirectoryListError) Error() string {
	return fmt.Sprintf(directoryListErrorTemplateConstant, failure.Path, describeCause(failure.Cause))
}

func (failure DirectoryListError) Unwrap() error {
	return failure.Cause
}

// describeCause drops the operation and path that fs.PathError repeats.
func describeCause(cause error) error {
	var pathError *fs.PathError
	if errors.As(cause, &pathError) && pathError.Err != nil {
		return pathError.Err
	}
	return cause
}
