package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/pending/internal/repos/filesystem"
)

func TestOSFileSystemReadDirDoesNotFollowSymlinks(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	targetDirectory := filepath.Join(rootDirectory, "target")
	require.NoError(testInstance, os.Mkdir(targetDirectory, 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(rootDirectory, "notes.txt"), []byte("notes"), 0o644))
	if symlinkError := os.Symlink(targetDirectory, filepath.Join(rootDirectory, "link")); symlinkError != nil {
		testInstance.Skipf("symlinks unsupported: %v", symlinkError)
	}

	fileSystem := filesystem.OSFileSystem{}
	entries, readError := fileSystem.ReadDir(rootDirectory)
	require.NoError(testInstance, readError)

	directoryFlags := make(map[string]bool, len(entries))
	for _, entry := range entries {
		directoryFlags[entry.Name()] = entry.IsDir()
	}
	require.Equal(testInstance, map[string]bool{"link": false, "notes.txt": false, "target": true}, directoryFlags)

	linkInfo, statError := fileSystem.Stat(filepath.Join(rootDirectory, "link"))
	require.NoError(testInstance, statError)
	require.True(testInstance, linkInfo.IsDir())
}
