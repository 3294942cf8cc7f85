// Package types defines the core types and interfaces used throughout
// linkfarm. This includes the capability interfaces FileIterator, FileFilter,
// and MetadataGetter, as well as the Metadata and Template data types and the
// FS filesystem abstraction.
package types
