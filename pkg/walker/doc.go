// Package walker provides the default FileIterator: a lazy depth-first walk
// over one or more storage roots. Within each directory, regular files are
// yielded in lexical order before subdirectories are descended. Symbolic
// links inside the tree are never followed; a root that is itself a file is
// a candidate like any other.
package walker
