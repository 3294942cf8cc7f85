package metadata

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/beevik/etree"

	lferrors "github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

// DefaultXMLSidecarSuffix is appended to a source file's full name to
// locate its XML sidecar.
const DefaultXMLSidecarSuffix = ".meta.xml"

// XMLSidecar reads per-file metadata from an XML sidecar named
// "<file><suffix>". Each child element of the document root is one field;
// the element's text content is the value.
type XMLSidecar struct {
	fs     types.FS
	suffix string
}

// NewXMLSidecar creates an XMLSidecar getter. An empty suffix selects
// DefaultXMLSidecarSuffix.
func NewXMLSidecar(fsys types.FS, suffix string) *XMLSidecar {
	if suffix == "" {
		suffix = DefaultXMLSidecarSuffix
	}
	return &XMLSidecar{fs: fsys, suffix: suffix}
}

// Suffix returns the sidecar suffix in use.
func (x *XMLSidecar) Suffix() string {
	return x.suffix
}

// Metadata reads and parses the file's XML sidecar. A missing sidecar
// yields empty metadata.
func (x *XMLSidecar) Metadata(path string) (types.Metadata, error) {
	sidecarPath := path + x.suffix

	data, err := x.fs.ReadFile(sidecarPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.Metadata{}, nil
		}
		return nil, lferrors.Wrapf(err, lferrors.ErrFileAccess,
			"failed to read metadata sidecar %s", sidecarPath)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, lferrors.Wrapf(err, lferrors.ErrMetadataParse,
			"malformed metadata sidecar %s", sidecarPath)
	}

	root := doc.Root()
	if root == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{}
	for _, child := range root.ChildElements() {
		meta[child.Tag] = strings.TrimSpace(child.Text())
	}
	return meta, nil
}
