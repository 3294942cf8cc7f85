package types

// FileIterator produces candidate file paths one at a time, in the manner of
// bufio.Scanner: Next advances to the next file and reports whether one is
// available, Path returns the current file, and Err reports the first error
// that stopped the iteration. Exhaustion and failure are distinct; after Next
// returns false, Err is nil if the producer simply ran out of files.
type FileIterator interface {
	Next() bool
	Path() string
	Err() error
}

// FileFilter decides whether a file encountered during traversal is a
// candidate for linking.
type FileFilter interface {
	Match(path string) bool
}

// FileFilterFunc adapts a plain function to the FileFilter interface.
type FileFilterFunc func(path string) bool

// Match calls f(path).
func (f FileFilterFunc) Match(path string) bool {
	return f(path)
}

// MetadataGetter resolves the metadata mapping for a source file. An error
// aborts the run that requested it; implementations should return an empty
// (or nil) Metadata, not an error, when a file merely has no metadata.
type MetadataGetter interface {
	Metadata(path string) (Metadata, error)
}

// MetadataGetterFunc adapts a plain function to the MetadataGetter interface.
type MetadataGetterFunc func(path string) (Metadata, error)

// Metadata calls f(path).
func (f MetadataGetterFunc) Metadata(path string) (Metadata, error) {
	return f(path)
}
