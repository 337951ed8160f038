// Package testutil provides test helpers and fixtures for appdata-cleaner
// tests. All file operations use t.TempDir() for safe, isolated testing.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Fixture holds a temp directory that stands in for an application data
// root. App directories are created directly under Root.
type Fixture struct {
	T    *testing.T
	Root string
}

// NewFixture creates a fixture backed by t.TempDir().
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{T: t, Root: t.TempDir()}
}

// Path joins relPath onto the fixture root.
func (f *Fixture) Path(relPath string) string {
	return filepath.Join(f.Root, relPath)
}

// CreateAppDir creates an app directory under the root containing one file
// per given size, and returns the directory path.
func (f *Fixture) CreateAppDir(name string, fileSizes ...int) string {
	f.T.Helper()

	dir := filepath.Join(f.Root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", dir, err)
	}
	for i, size := range fileSizes {
		f.CreateFile(filepath.Join(name, fmt.Sprintf("data%d.bin", i)), make([]byte, size))
	}
	return dir
}

// CreateNestedDir creates a directory at relPath (all parents included) and
// returns its absolute path.
func (f *Fixture) CreateNestedDir(relPath string) string {
	f.T.Helper()

	dir := filepath.Join(f.Root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
}

// CreateFile creates a file with the given content, creating parents as
// needed, and returns its path.
func (f *Fixture) CreateFile(relPath string, content []byte) string {
	f.T.Helper()

	fullPath := filepath.Join(f.Root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		f.T.Fatalf("failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateUnreadableDir creates a directory whose permissions deny traversal.
// Permissions are restored on cleanup so t.TempDir can remove it.
func (f *Fixture) CreateUnreadableDir(name string) string {
	f.T.Helper()

	dir := f.CreateAppDir(name, 16)
	if err := os.Chmod(dir, 0o000); err != nil {
		f.T.Fatalf("failed to chmod %s: %v", dir, err)
	}
	f.T.Cleanup(func() {
		_ = os.Chmod(dir, 0o755)
	})
	return dir
}

// FileExists reports whether the path exists.
func (f *Fixture) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AssertGone fails the test if the path still exists.
func (f *Fixture) AssertGone(path string) {
	f.T.Helper()
	if f.FileExists(path) {
		f.T.Errorf("expected %s to be deleted, but it exists", path)
	}
}

// AssertExists fails the test if the path is missing.
func (f *Fixture) AssertExists(path string) {
	f.T.Helper()
	if !f.FileExists(path) {
		f.T.Errorf("expected %s to exist, but it does not", path)
	}
}

// SkipIfRoot skips tests that rely on permission denials, which root
// bypasses.
func SkipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("running as root; permission checks are not enforced")
	}
}
