package filters

import (
	"github.com/arthur-debert/linkfarm/pkg/types"
)

// Everything returns a filter that matches every file.
func Everything() types.FileFilter {
	return types.FileFilterFunc(func(string) bool { return true })
}

// Not inverts a filter.
func Not(filter types.FileFilter) types.FileFilter {
	return types.FileFilterFunc(func(path string) bool {
		return !filter.Match(path)
	})
}

// All matches when every filter matches. With no filters it matches
// everything.
func All(filters ...types.FileFilter) types.FileFilter {
	return types.FileFilterFunc(func(path string) bool {
		for _, f := range filters {
			if !f.Match(path) {
				return false
			}
		}
		return true
	})
}

// Any matches when at least one filter matches. With no filters it matches
// nothing.
func Any(filters ...types.FileFilter) types.FileFilter {
	return types.FileFilterFunc(func(path string) bool {
		for _, f := range filters {
			if f.Match(path) {
				return true
			}
		}
		return false
	})
}
