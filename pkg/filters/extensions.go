package filters

import (
	"path/filepath"
	"strings"
)

// Extensions matches files by their extension, case-insensitively.
type Extensions struct {
	exts map[string]bool
}

// NewExtensions creates an Extensions filter. A leading dot on each
// extension is optional.
func NewExtensions(exts ...string) *Extensions {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[strings.ToLower(ext)] = true
	}
	return &Extensions{exts: set}
}

// Match checks the file's extension against the set
func (e *Extensions) Match(path string) bool {
	return e.exts[strings.ToLower(filepath.Ext(path))]
}
