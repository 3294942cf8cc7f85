// Package metadata provides the bundled MetadataGetter implementations:
// YAML and XML sidecar files, per-directory index files, a fixed static
// mapping, and a chain that consults several sources in order. Each source
// registers a factory under a well-known name ("yaml", "xml", "index",
// "auto") so the configuration layer can resolve sources by name.
//
// All bundled getters treat a missing metadata file as empty metadata, not
// an error: the file simply has no values, and templates degrade to
// placeholder segments.
package metadata
