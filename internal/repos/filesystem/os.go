package filesystem

import (
	"io/fs"
	"os"
)

// OSFileSystem reads metadata and directory listings from the operating system.
type OSFileSystem struct{}

// Stat retrieves file metadata, following symbolic links.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir lists the entries of a directory. Entry types describe the entries themselves, so a
// symbolic link to a directory is not reported as a directory.
func (OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}
