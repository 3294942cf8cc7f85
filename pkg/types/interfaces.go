package types

import (
	"io/fs"
)

// FS is the filesystem interface required for linkfarm operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Link operations
	Symlink(oldname, newname string) error
	Link(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Lstat reports on the entry itself, not its target.
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// Pather provides the well-known directories for linkfarm operations
type Pather interface {
	// ConfigDir returns the XDG config directory for linkfarm
	ConfigDir() string

	// DataDir returns the XDG data directory for linkfarm
	DataDir() string

	// StateDir returns the XDG state directory for linkfarm
	StateDir() string
}
