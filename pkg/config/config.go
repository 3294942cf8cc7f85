package config

import (
	"strings"

	lferrors "github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

// Config is the tool's fully merged configuration.
type Config struct {
	// StorageRoot is the single directory to walk for storage files.
	// Mutually exclusive with StorageRoots.
	StorageRoot  string   `koanf:"storage_root"`
	StorageRoots []string `koanf:"storage_roots"`

	// LinkRoot is the directory the link tree is built under.
	LinkRoot string `koanf:"link_root"`

	// LinkPaths holds compact templates, one path layout each, written as
	// slash-separated field names ("artist/year").
	LinkPaths []string `koanf:"link_paths"`

	// Hardlink selects hard links instead of symbolic links.
	Hardlink bool `koanf:"hardlink"`

	// OnExisting is the collision policy: "fail" (default) or "skip".
	OnExisting string `koanf:"on_existing"`

	Filter   Filter   `koanf:"filter"`
	Metadata Metadata `koanf:"metadata"`
}

// Filter holds base-name glob patterns selecting which storage files get
// linked. An empty include list means every file.
type Filter struct {
	Include []string `koanf:"include"`
	Exclude []string `koanf:"exclude"`
}

// Metadata selects the metadata source and its file naming.
type Metadata struct {
	// Source names a registered metadata source: "yaml" (default), "xml",
	// "index" or "auto".
	Source string `koanf:"source"`

	// Suffix overrides the YAML sidecar suffix (default ".meta.yaml").
	Suffix string `koanf:"suffix"`

	// XMLSuffix overrides the XML sidecar suffix (default ".meta.xml").
	XMLSuffix string `koanf:"xml_suffix"`

	// Index overrides the per-directory index file name
	// (default ".linkfarm.yaml").
	Index string `koanf:"index"`
}

// ParseTemplate parses one compact template ("artist/year") into its field
// names. Empty templates and empty fields are configuration errors.
func ParseTemplate(spec string) (types.Template, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return nil, lferrors.New(lferrors.ErrConfigInvalid, "link path is empty")
	}

	fields := strings.Split(trimmed, "/")
	for _, field := range fields {
		if field == "" {
			return nil, lferrors.Newf(lferrors.ErrConfigInvalid,
				"link path %q has an empty field", trimmed)
		}
	}
	return types.Template(fields), nil
}

// ParseTemplates parses a list of compact templates.
func ParseTemplates(specs []string) ([]types.Template, error) {
	templates := make([]types.Template, 0, len(specs))
	for i, spec := range specs {
		tpl, err := ParseTemplate(spec)
		if err != nil {
			return nil, lferrors.Wrapf(err, lferrors.ErrConfigInvalid,
				"link path %d", i+1)
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}
