package builder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

// Placeholder is the path segment substituted for absent or empty metadata
// values, so every template yields a path of its own depth for every file.
const Placeholder = "-"

// materializer turns (file, metadata, template) triples into directories
// and links. It is scoped to one run so it can count directory creations
// without re-checking paths it has already seen.
type materializer struct {
	fs         types.FS
	linkRoot   string
	mode       LinkMode
	onExisting ExistingPolicy
	result     *Result
	knownDirs  map[string]bool
	logger     zerolog.Logger
}

func newMaterializer(b *Builder, result *Result) *materializer {
	return &materializer{
		fs:         b.fs,
		linkRoot:   b.linkRoot,
		mode:       b.mode,
		onExisting: b.onExisting,
		result:     result,
		knownDirs:  make(map[string]bool),
		logger:     b.logger,
	}
}

// materialize applies one template to one file. It reports skip=true when
// an existing destination was found under the Skip policy, which tells the
// caller to abandon the remaining templates for this file.
func (m *materializer) materialize(source, base string, meta types.Metadata, tpl types.Template) (skip bool, err error) {
	segments := make([]string, len(tpl))
	for i, field := range tpl {
		segments[i] = segmentFor(meta, field)
	}

	destDir := filepath.Join(append([]string{m.linkRoot}, segments...)...)
	if err := m.ensureDir(destDir); err != nil {
		return false, errors.Wrapf(err, errors.ErrLinkCreate,
			"failed to create destination directory").
			WithDetail("source", source).
			WithDetail("destination", destDir)
	}

	dest := filepath.Join(destDir, base)

	if m.onExisting == ExistingSkip {
		if _, err := m.fs.Lstat(dest); err == nil {
			m.result.LinksSkipped++
			m.logger.Trace().Str("destination", dest).Msg("destination exists, skipping file")
			return true, nil
		}
	}

	// Under the Fail policy there is no pre-check: an existing entry
	// surfaces as the OS-level error below.
	var linkErr error
	if m.mode == LinkHard {
		linkErr = m.fs.Link(source, dest)
	} else {
		linkErr = m.fs.Symlink(source, dest)
	}
	if linkErr != nil {
		return false, errors.Wrapf(linkErr, errors.ErrLinkCreate,
			"failed to create %s link", m.mode).
			WithDetail("source", source).
			WithDetail("destination", dest)
	}

	m.result.LinksCreated++
	m.logger.Trace().Str("source", source).Str("destination", dest).Msg("link created")
	return false, nil
}

// ensureDir creates dir and any missing parents, counting how many
// directories under the link root actually came into existence.
func (m *materializer) ensureDir(dir string) error {
	if m.knownDirs[dir] {
		return nil
	}

	var missing []string
	for d := dir; ; {
		if d == m.linkRoot || d == "." || d == "/" || m.knownDirs[d] {
			break
		}
		if _, err := m.fs.Lstat(d); err == nil {
			m.knownDirs[d] = true
			break
		}
		missing = append(missing, d)

		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}

	if len(missing) > 0 {
		if err := m.fs.MkdirAll(dir, 0755); err != nil {
			return err
		}
		for _, d := range missing {
			m.knownDirs[d] = true
		}
		m.result.DirsCreated += len(missing)
	}

	m.knownDirs[dir] = true
	return nil
}

// segmentFor derives the path segment for one template field: absent and
// empty values become the placeholder, everything else is sanitized.
func segmentFor(meta types.Metadata, field string) string {
	value, ok := meta[field]
	if !ok || value == "" {
		return Placeholder
	}
	return sanitizeSegment(value)
}

// sanitizeSegment keeps metadata values from escaping their directory
// level: path separators are flattened to "-" and a leading "." becomes
// "_", so values like "a/b" or ".." stay a single visible segment.
func sanitizeSegment(value string) string {
	value = strings.ReplaceAll(value, "/", "-")
	if sep := string(os.PathSeparator); sep != "/" {
		value = strings.ReplaceAll(value, sep, "-")
	}
	if strings.HasPrefix(value, ".") {
		value = "_" + value[1:]
	}
	return value
}
