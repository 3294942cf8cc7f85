// Package registry provides a generic, thread-safe named registry and the
// global registry of metadata source factories. Metadata source
// implementations register themselves at init time so the configuration
// layer can resolve them by name.
package registry
