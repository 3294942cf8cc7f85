package metadata

import (
	"github.com/arthur-debert/linkfarm/pkg/builder"
	"github.com/arthur-debert/linkfarm/pkg/filesystem"
)

// NewSidecarBuilder creates a builder wired to YAML sidecar metadata.
// It fills in the options' FS if unset, installs a Sidecar getter on
// that filesystem, and locks the metadata source so later
// SetMetadataGetter calls fail. Any Metadata already present in opts is
// replaced.
func NewSidecarBuilder(opts builder.Options, suffix string) (*builder.Builder, error) {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	opts.Metadata = NewSidecar(opts.FS, suffix)
	opts.LockMetadata = true
	return builder.New(opts)
}
