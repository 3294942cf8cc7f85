// Package builder implements the link tree builder: it walks source files
// from one or more storage roots, fetches metadata for each, and creates a
// link (symbolic or hard) for every configured link path template under the
// link root.
//
// A template is an ordered list of metadata field names; each field value
// becomes one directory level, sanitized so metadata can never inject extra
// path levels or hidden directories. Absent and empty values degrade to the
// "-" placeholder, so every template yields a path of the same depth for
// every file.
//
// Builders are constructed with New, validated eagerly, and consumed by Run.
package builder
