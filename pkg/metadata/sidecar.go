package metadata

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	lferrors "github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/logging"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

// DefaultSidecarSuffix is appended to a source file's full name to locate
// its YAML sidecar.
const DefaultSidecarSuffix = ".meta.yaml"

// Sidecar reads per-file metadata from a YAML sidecar living next to the
// source file, named "<file><suffix>". The sidecar holds one flat mapping;
// scalar values are coerced to strings and nested values are rejected.
type Sidecar struct {
	fs     types.FS
	suffix string
}

// NewSidecar creates a Sidecar getter. An empty suffix selects
// DefaultSidecarSuffix.
func NewSidecar(fsys types.FS, suffix string) *Sidecar {
	if suffix == "" {
		suffix = DefaultSidecarSuffix
	}
	return &Sidecar{fs: fsys, suffix: suffix}
}

// Suffix returns the sidecar suffix in use.
func (s *Sidecar) Suffix() string {
	return s.suffix
}

// Metadata reads and parses the file's sidecar. A missing sidecar yields
// empty metadata.
func (s *Sidecar) Metadata(path string) (types.Metadata, error) {
	sidecarPath := path + s.suffix

	data, err := s.fs.ReadFile(sidecarPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger := logging.GetLogger("metadata.sidecar")
			logger.Trace().
				Str("file", path).
				Msg("no sidecar, empty metadata")
			return types.Metadata{}, nil
		}
		return nil, lferrors.Wrapf(err, lferrors.ErrFileAccess,
			"failed to read metadata sidecar %s", sidecarPath)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, lferrors.Wrapf(err, lferrors.ErrMetadataParse,
			"malformed metadata sidecar %s", sidecarPath)
	}

	meta, err := flattenMapping(raw)
	if err != nil {
		return nil, lferrors.Wrapf(err, lferrors.ErrMetadataParse,
			"malformed metadata sidecar %s", sidecarPath)
	}
	return meta, nil
}

// flattenMapping converts a decoded YAML mapping into Metadata, coercing
// scalars to strings. Nested mappings and sequences are not metadata
// values and are rejected.
func flattenMapping(raw map[string]interface{}) (types.Metadata, error) {
	meta := make(types.Metadata, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			meta[key] = ""
		case string:
			meta[key] = v
		case bool, int, int64, uint64, float64:
			meta[key] = fmt.Sprint(v)
		default:
			return nil, fmt.Errorf("field %q has non-scalar value of type %T", key, value)
		}
	}
	return meta, nil
}
