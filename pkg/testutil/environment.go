// pkg/testutil/environment.go
// DEPENDENCIES: paths, types
// PURPOSE: In-memory machine layout for inventory and discovery tests

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/residue/pkg/paths"
	"github.com/arthur-debert/residue/pkg/types"
	"github.com/spf13/afero"
)

// FileTree represents a directory structure for testing. String values are
// file contents, nested FileTree values are directories.
type FileTree map[string]interface{}

// TestEnvironment is a fake machine on a memory filesystem
type TestEnvironment struct {
	FS      afero.Fs
	Folders paths.StaticFolders
	Root    string

	t *testing.T
}

// NewTestEnvironment creates the standard folder layout under /machine
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := filepath.FromSlash("/machine")
	env := &TestEnvironment{
		FS:   afero.NewMemMapFs(),
		Root: root,
		t:    t,
		Folders: paths.StaticFolders{
			types.FolderPrograms:       filepath.Join(root, "Users", "me", "AppData", "Roaming", "Microsoft", "Windows", "Start Menu", "Programs"),
			types.FolderCommonPrograms: filepath.Join(root, "ProgramData", "Microsoft", "Windows", "Start Menu", "Programs"),
			types.FolderDesktop:        filepath.Join(root, "Users", "me", "Desktop"),
			types.FolderCommonDesktop:  filepath.Join(root, "Users", "Public", "Desktop"),
			types.FolderWindows:        filepath.Join(root, "Windows"),
		},
	}

	for _, dir := range env.Folders {
		CreateDirT(t, env.FS, dir)
	}
	return env
}

// Dir returns the concrete path of a folder
func (env *TestEnvironment) Dir(folder types.KnownFolder) string {
	return env.Folders[folder]
}

// Path joins elements below the machine root
func (env *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{env.Root}, elem...)...)
}

// WithFileTree creates tree inside the given folder
func (env *TestEnvironment) WithFileTree(folder types.KnownFolder, tree FileTree) {
	env.t.Helper()
	createFileTree(env.t, env.FS, env.Dir(folder), tree)
}

// RemoveFolder deletes a folder, making it inaccessible to enumeration
func (env *TestEnvironment) RemoveFolder(folder types.KnownFolder) {
	env.t.Helper()
	if err := env.FS.RemoveAll(env.Dir(folder)); err != nil {
		env.t.Fatalf("Failed to remove %s: %v", folder, err)
	}
}

// CreateDirT creates a directory and fails the test on error
func CreateDirT(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()
	if err := fs.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", dir, err)
	}
}

// CreateFileT writes a file, creating parents, and fails the test on error
func CreateFileT(t *testing.T, fs afero.Fs, path string, content []byte) {
	t.Helper()
	CreateDirT(t, fs, filepath.Dir(path))
	if err := afero.WriteFile(fs, path, content, 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

func createFileTree(t *testing.T, fs afero.Fs, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			CreateFileT(t, fs, fullPath, []byte(v))
		case []byte:
			CreateFileT(t, fs, fullPath, v)
		case FileTree:
			CreateDirT(t, fs, fullPath)
			createFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
