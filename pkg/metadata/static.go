package metadata

import (
	"path/filepath"

	"github.com/arthur-debert/linkfarm/pkg/types"
)

// Static serves a fixed mapping keyed by file base name. Files without an
// entry get empty metadata.
type Static struct {
	byName map[string]types.Metadata
}

// NewStatic creates a Static getter over the given base-name mapping.
func NewStatic(byName map[string]types.Metadata) *Static {
	return &Static{byName: byName}
}

// Metadata returns the mapping for the file's base name.
func (s *Static) Metadata(path string) (types.Metadata, error) {
	meta := s.byName[filepath.Base(path)]
	if meta == nil {
		return types.Metadata{}, nil
	}
	return meta.Clone(), nil
}
