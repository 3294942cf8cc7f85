package testutil

import (
	"os"
	"testing"

	"github.com/arthur-debert/linkfarm/pkg/types"
)

// AssertFileExists checks that path exists on fs and is a regular file
func AssertFileExists(t *testing.T, fs types.FS, path string) {
	t.Helper()

	info, err := fs.Lstat(path)
	if err != nil {
		t.Errorf("Expected file at %s: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("Expected file at %s, found directory", path)
	}
}

// AssertDirExists checks that path exists on fs and is a directory
func AssertDirExists(t *testing.T, fs types.FS, path string) {
	t.Helper()

	info, err := fs.Lstat(path)
	if err != nil {
		t.Errorf("Expected directory at %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Expected directory at %s, found file", path)
	}
}

// AssertNotExists checks that path does not exist on fs
func AssertNotExists(t *testing.T, fs types.FS, path string) {
	t.Helper()

	if _, err := fs.Lstat(path); err == nil {
		t.Errorf("Expected nothing at %s, found an entry", path)
	}
}

// AssertSymlinkTo checks that link is a symlink on fs pointing at target
func AssertSymlinkTo(t *testing.T, fs types.FS, link, target string) {
	t.Helper()

	info, err := fs.Lstat(link)
	if err != nil {
		t.Errorf("Expected symlink at %s: %v", link, err)
		return
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("Expected symlink at %s, mode is %v", link, info.Mode())
		return
	}

	got, err := fs.Readlink(link)
	if err != nil {
		t.Errorf("Readlink(%s) failed: %v", link, err)
		return
	}
	if got != target {
		t.Errorf("Symlink %s points at %s, want %s", link, got, target)
	}
}

// AssertHardlinkTo checks that link aliases source on a MemoryFS
func AssertHardlinkTo(t *testing.T, fs *MemoryFS, link, source string) {
	t.Helper()

	info, err := fs.Lstat(link)
	if err != nil {
		t.Errorf("Expected hard link at %s: %v", link, err)
		return
	}
	if info.Mode()&os.ModeSymlink != 0 {
		t.Errorf("Expected hard link at %s, found symlink", link)
		return
	}
	if !fs.SameNode(link, source) {
		t.Errorf("Hard link %s does not alias %s", link, source)
	}
}
