package builder

import (
	"github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/filesystem"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

// LinkMode selects the kind of link the builder creates.
type LinkMode int

const (
	// LinkSymbolic creates symbolic links. This is the default.
	LinkSymbolic LinkMode = iota

	// LinkHard creates hard links.
	LinkHard
)

// String returns the mode name as used in configuration and logs.
func (m LinkMode) String() string {
	if m == LinkHard {
		return "hard"
	}
	return "symbolic"
}

// ExistingPolicy decides what happens when a destination link path already
// exists.
type ExistingPolicy int

const (
	// ExistingFail attempts the link anyway, so the OS-level failure
	// surfaces as a LinkCreationError. This is the default.
	ExistingFail ExistingPolicy = iota

	// ExistingSkip leaves the existing entry alone. Once one existing
	// entry is found for a file, the remaining templates for that file
	// are abandoned as well; see Run.
	ExistingSkip
)

// String returns the policy name as used in configuration and logs.
func (p ExistingPolicy) String() string {
	if p == ExistingSkip {
		return "skip"
	}
	return "fail"
}

// ParseExistingPolicy converts a configuration value into an ExistingPolicy.
func ParseExistingPolicy(s string) (ExistingPolicy, error) {
	switch s {
	case "fail", "":
		return ExistingFail, nil
	case "skip":
		return ExistingSkip, nil
	}
	return ExistingFail, errors.Newf(errors.ErrConfigInvalid,
		"unknown on_existing policy %q, expected \"fail\" or \"skip\"", s)
}

// Options configures a Builder. Exactly one of StorageRoot and StorageRoots
// must be set.
type Options struct {
	// StorageRoot is a single storage root to scan for source files.
	StorageRoot string

	// StorageRoots is an ordered list of storage roots to scan. Mutually
	// exclusive with StorageRoot.
	StorageRoots []string

	// LinkRoot is the directory under which every derived tree is built.
	// Defaults to the current directory.
	LinkRoot string

	// LinkPaths are the templates to apply, in order, to every file.
	LinkPaths []types.Template

	// FileFilter selects candidate files. It is consumed by the default
	// iterator and ignored when Iterator is supplied. Nil accepts every
	// file.
	FileFilter types.FileFilter

	// Metadata resolves the metadata mapping for each file. It may be nil
	// at construction and injected later with SetMetadataGetter; a run
	// that needs metadata without a getter fails.
	Metadata types.MetadataGetter

	// LockMetadata hard-wires the metadata source: SetMetadataGetter will
	// refuse to replace it. Requires Metadata to be set.
	LockMetadata bool

	// LinkMode selects symbolic or hard links.
	LinkMode LinkMode

	// OnExisting is the collision policy for existing destination entries.
	OnExisting ExistingPolicy

	// Iterator overrides the default storage root walk. A supplied
	// iterator is single-pass: a second Run sees it already exhausted.
	Iterator types.FileIterator

	// FS is the filesystem the builder operates on. Defaults to the OS
	// filesystem.
	FS types.FS
}

// normalize validates the options and resolves the storage root forms into
// a single list. It must not touch the filesystem.
func (o *Options) normalize() ([]string, error) {
	if o.StorageRoot != "" && len(o.StorageRoots) > 0 {
		return nil, errors.New(errors.ErrConfigInvalid,
			"storage_root and storage_roots are mutually exclusive, supply exactly one")
	}

	roots := o.StorageRoots
	if o.StorageRoot != "" {
		roots = []string{o.StorageRoot}
	}
	if len(roots) == 0 {
		return nil, errors.New(errors.ErrConfigInvalid, "no storage roots configured")
	}

	for i, tpl := range o.LinkPaths {
		if len(tpl) == 0 {
			return nil, errors.Newf(errors.ErrConfigInvalid, "link path %d is empty", i+1)
		}
	}

	if o.LinkMode != LinkSymbolic && o.LinkMode != LinkHard {
		return nil, errors.Newf(errors.ErrConfigInvalid, "unknown link mode %d", int(o.LinkMode))
	}
	if o.OnExisting != ExistingFail && o.OnExisting != ExistingSkip {
		return nil, errors.Newf(errors.ErrConfigInvalid, "unknown on_existing policy %d", int(o.OnExisting))
	}

	if o.LockMetadata && o.Metadata == nil {
		return nil, errors.New(errors.ErrConfigInvalid,
			"lock_metadata requires a metadata getter")
	}

	if o.LinkRoot == "" {
		o.LinkRoot = "."
	}
	if o.FS == nil {
		o.FS = filesystem.NewOS()
	}

	return roots, nil
}
