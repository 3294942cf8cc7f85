// Package filters provides FileFilter implementations for selecting which
// storage files become link candidates: base-name globs, extension sets,
// and the Not/All/Any combinators for composing them.
package filters
