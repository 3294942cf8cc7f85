// Package testutil provides test infrastructure for linkfarm: an in-memory
// types.FS implementation with symlink and hard-link semantics and error
// injection, helpers for seeding file trees, and filesystem assertions.
package testutil
