// Package filesystem provides filesystem implementations for linkfarm.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem, an afero adapter, and a dry-run wrapper that
// records mutations instead of performing them.
package filesystem
