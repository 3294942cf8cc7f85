package builder

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/logging"
	"github.com/arthur-debert/linkfarm/pkg/types"
	"github.com/arthur-debert/linkfarm/pkg/walker"
)

// Builder builds link trees. Configuration is immutable after New, with the
// single exception of the metadata getter, which may be injected later via
// SetMetadataGetter unless the builder was constructed locked.
type Builder struct {
	roots      []string
	linkRoot   string
	linkPaths  []types.Template
	filter     types.FileFilter
	metadata   types.MetadataGetter
	locked     bool
	mode       LinkMode
	onExisting ExistingPolicy
	iterator   types.FileIterator
	fs         types.FS
	logger     zerolog.Logger
}

// New validates opts eagerly, before any filesystem activity, and returns a
// ready Builder. Invalid or contradictory options fail with a
// CONFIG_INVALID error naming the violated constraint.
func New(opts Options) (*Builder, error) {
	roots, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	return &Builder{
		roots:      roots,
		linkRoot:   filepath.Clean(opts.LinkRoot),
		linkPaths:  opts.LinkPaths,
		filter:     opts.FileFilter,
		metadata:   opts.Metadata,
		locked:     opts.LockMetadata,
		mode:       opts.LinkMode,
		onExisting: opts.OnExisting,
		iterator:   opts.Iterator,
		fs:         opts.FS,
		logger:     logging.GetLogger("builder"),
	}, nil
}

// SetMetadataGetter injects or replaces the metadata source. It fails on a
// builder whose metadata source is locked.
func (b *Builder) SetMetadataGetter(getter types.MetadataGetter) error {
	if b.locked {
		return errors.New(errors.ErrMetadataSourceLocked,
			"metadata source is locked and cannot be replaced")
	}
	if getter == nil {
		return errors.New(errors.ErrInvalidInput, "metadata getter cannot be nil")
	}
	b.metadata = getter
	return nil
}

// Run pulls every candidate file, fetches its metadata once, and applies
// every link path template to it in order. The first error is fatal: there
// is no retry and no cleanup, and whatever was created before the failure
// stays on disk. The returned Result reflects the work done up to that
// point.
//
// With the default iterator each Run walks the storage roots afresh, so a
// builder can run repeatedly. A caller-supplied Iterator is single-pass: a
// second Run sees it already exhausted.
func (b *Builder) Run() (*Result, error) {
	defer logging.LogOperationStart(b.logger, "link tree build")()

	b.logger.Debug().
		Strs("roots", b.roots).
		Str("link_root", b.linkRoot).
		Int("link_paths", len(b.linkPaths)).
		Str("mode", b.mode.String()).
		Str("on_existing", b.onExisting.String()).
		Msg("starting run")

	it := b.iterator
	if it == nil {
		it = walker.New(b.fs, b.roots, b.filter)
	}

	result := &Result{}
	m := newMaterializer(b, result)

	for it.Next() {
		path := it.Path()

		// Resolved against the working directory now, not at
		// construction, because storage roots may be relative.
		abs, err := filepath.Abs(path)
		if err != nil {
			return result, errors.Wrapf(err, errors.ErrFileAccess,
				"failed to resolve absolute path for %s", path)
		}

		meta, err := b.fetchMetadata(abs)
		if err != nil {
			return result, err
		}

		result.FilesProcessed++
		base := filepath.Base(abs)

		b.logger.Trace().Str("file", abs).Int("fields", len(meta)).Msg("processing file")

		for _, tpl := range b.linkPaths {
			skip, err := m.materialize(abs, base, meta, tpl)
			if err != nil {
				return result, err
			}
			if skip {
				// One existing destination abandons the remaining
				// templates for this file, not just this template.
				break
			}
		}
	}

	if err := it.Err(); err != nil {
		return result, err
	}

	b.logger.Info().
		Int("files", result.FilesProcessed).
		Int("links_created", result.LinksCreated).
		Int("links_skipped", result.LinksSkipped).
		Int("dirs_created", result.DirsCreated).
		Msg("run complete")

	return result, nil
}

// fetchMetadata calls the getter exactly once per file. Getter errors
// propagate verbatim, never wrapped.
func (b *Builder) fetchMetadata(path string) (types.Metadata, error) {
	if b.metadata == nil {
		return nil, errors.New(errors.ErrMetadataSourceMissing,
			"no metadata source configured")
	}
	return b.metadata.Metadata(path)
}
