package metadata

import (
	"errors"
	"io/fs"
	"path/filepath"

	"gopkg.in/yaml.v3"

	lferrors "github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

// DefaultIndexName is the per-directory index file DirIndex looks for.
const DefaultIndexName = ".linkfarm.yaml"

// DirIndex reads metadata from a single index file per directory. The
// index maps file base names to their field mappings:
//
//	track01.flac:
//	  artist: Miles Davis
//	  year: 1959
//	track02.flac:
//	  artist: Bill Evans
//
// The index is re-read on every lookup. Builds visit each file once, so
// caching would only pin stale data across edits made mid-run.
type DirIndex struct {
	fs        types.FS
	indexName string
}

// NewDirIndex creates a DirIndex getter. An empty indexName selects
// DefaultIndexName.
func NewDirIndex(fsys types.FS, indexName string) *DirIndex {
	if indexName == "" {
		indexName = DefaultIndexName
	}
	return &DirIndex{fs: fsys, indexName: indexName}
}

// IndexName returns the per-directory index file name in use.
func (d *DirIndex) IndexName() string {
	return d.indexName
}

// Metadata looks the file up in its directory's index. A missing index
// file, or an index with no entry for the file, yields empty metadata.
func (d *DirIndex) Metadata(path string) (types.Metadata, error) {
	indexPath := filepath.Join(filepath.Dir(path), d.indexName)

	data, err := d.fs.ReadFile(indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.Metadata{}, nil
		}
		return nil, lferrors.Wrapf(err, lferrors.ErrFileAccess,
			"failed to read metadata index %s", indexPath)
	}

	var index map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, lferrors.Wrapf(err, lferrors.ErrMetadataParse,
			"malformed metadata index %s", indexPath)
	}

	raw, ok := index[filepath.Base(path)]
	if !ok {
		return types.Metadata{}, nil
	}

	meta, err := flattenMapping(raw)
	if err != nil {
		return nil, lferrors.Wrapf(err, lferrors.ErrMetadataParse,
			"invalid metadata for %s in index %s", filepath.Base(path), indexPath)
	}
	return meta, nil
}
