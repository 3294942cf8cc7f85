package walker

import (
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/linkfarm/pkg/logging"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

type itemKind int

const (
	kindRoot itemKind = iota // needs a Stat to classify
	kindFile                 // known regular file, ready to yield
	kindDir                  // known directory, ready to expand
)

type workItem struct {
	path string
	kind itemKind
}

// Walker implements types.FileIterator over a types.FS. It is single-pass:
// once exhausted or failed it stays that way.
type Walker struct {
	fs     types.FS
	filter types.FileFilter
	logger zerolog.Logger

	// stack holds pending work, top at the end
	stack   []workItem
	current string
	err     error
}

// New creates a Walker over the given roots. A nil filter accepts every
// file. Roots are resolved with Stat, so a root that is itself a symlink is
// followed; entries below the roots are classified by Lstat semantics and
// symlinks are skipped.
func New(fsys types.FS, roots []string, filter types.FileFilter) *Walker {
	w := &Walker{
		fs:     fsys,
		filter: filter,
		logger: logging.GetLogger("walker"),
	}

	// Push in reverse so the first root is processed first
	for i := len(roots) - 1; i >= 0; i-- {
		w.stack = append(w.stack, workItem{path: roots[i], kind: kindRoot})
	}

	w.logger.Debug().Strs("roots", roots).Msg("walk started")
	return w
}

// Next advances to the next candidate file. It returns false when the walk
// is exhausted or a traversal error occurred; Err distinguishes the two.
func (w *Walker) Next() bool {
	if w.err != nil {
		return false
	}

	for len(w.stack) > 0 {
		item := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		switch item.kind {
		case kindFile:
			w.current = item.path
			return true

		case kindRoot:
			info, err := w.fs.Stat(item.path)
			if err != nil {
				w.fail(err)
				return false
			}
			if info.Mode().IsRegular() {
				if w.accepts(item.path) {
					w.current = item.path
					return true
				}
				continue
			}
			if info.IsDir() {
				if !w.expand(item.path) {
					return false
				}
				continue
			}
			w.logger.Warn().Str("path", item.path).Msg("root is neither file nor directory, skipping")

		case kindDir:
			if !w.expand(item.path) {
				return false
			}
		}
	}

	return false
}

// Path returns the file Next advanced to.
func (w *Walker) Path() string {
	return w.current
}

// Err returns the error that stopped the walk, or nil after a clean
// exhaustion.
func (w *Walker) Err() error {
	return w.err
}

func (w *Walker) fail(err error) {
	w.err = err
	w.stack = nil
	w.logger.Error().Err(err).Msg("walk aborted")
}

func (w *Walker) accepts(path string) bool {
	return w.filter == nil || w.filter.Match(path)
}

// expand reads a directory and pushes its entries: subdirectories first so
// that files, pushed after, pop before them. Both groups keep lexical order.
// It reports false when the read failed and the walk is aborted.
func (w *Walker) expand(dir string) bool {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		w.fail(err)
		return false
	}

	w.logger.Trace().Str("dir", dir).Int("entries", len(entries)).Msg("expanding directory")

	var files, dirs []workItem
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Symlinks are neither descended nor yielded
		if entry.Type()&fs.ModeSymlink != 0 {
			continue
		}

		switch {
		case entry.IsDir():
			dirs = append(dirs, workItem{path: path, kind: kindDir})
		case entry.Type().IsRegular():
			if w.accepts(path) {
				files = append(files, workItem{path: path, kind: kindFile})
			}
		}
	}

	for i := len(dirs) - 1; i >= 0; i-- {
		w.stack = append(w.stack, dirs[i])
	}
	for i := len(files) - 1; i >= 0; i-- {
		w.stack = append(w.stack, files[i])
	}

	return true
}
