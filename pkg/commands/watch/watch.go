// Package watch implements the watch command: build the link tree, then
// rebuild whenever the storage roots change.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/arthur-debert/linkfarm/pkg/builder"
	"github.com/arthur-debert/linkfarm/pkg/config"
	"github.com/arthur-debert/linkfarm/pkg/filesystem"
	"github.com/arthur-debert/linkfarm/pkg/logging"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

// DefaultDebounce is how long the watcher waits for events to settle
// before rebuilding.
const DefaultDebounce = 500 * time.Millisecond

// Options holds the options for the watch command.
type Options struct {
	// ConfigFile names the config file to load. Empty means discovery.
	ConfigFile string

	// Overrides carries flag values as dot-delimited config keys.
	Overrides map[string]interface{}

	// Debounce is the settle time between the last event and the rebuild.
	// Zero means DefaultDebounce.
	Debounce time.Duration

	// OnBuild, when set, is called after every completed rebuild.
	OnBuild func(*builder.Result)

	// FS is the filesystem to build against. Nil means the real one.
	// Storage roots are always watched through the OS; fsnotify has no
	// notion of a virtual filesystem.
	FS types.FS
}

// Watch builds the link tree and keeps rebuilding on storage changes until
// the context is cancelled. The collision policy is forced to skip so
// rebuilds are idempotent; whatever on_existing says, a watch run never
// fails on links it already created.
func Watch(ctx context.Context, opts Options) error {
	log := logging.GetLogger("commands.watch")

	cfg, err := config.Load(opts.ConfigFile, opts.Overrides)
	if err != nil {
		return err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	builderOpts, err := cfg.BuilderOptions(fsys)
	if err != nil {
		return err
	}
	builderOpts.OnExisting = builder.ExistingSkip

	b, err := builder.New(builderOpts)
	if err != nil {
		return err
	}

	roots := builderOpts.StorageRoots
	if len(roots) == 0 {
		roots = []string{builderOpts.StorageRoot}
	}
	linkRoot, err := filepath.Abs(builderOpts.LinkRoot)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	for _, root := range roots {
		if err := addRecursive(watcher, root); err != nil {
			return err
		}
	}
	log.Info().Strs("roots", roots).Dur("debounce", debounce(opts)).
		Msg("Watching storage roots")

	rebuild := func() {
		result, err := b.Run()
		if err != nil {
			// A broken sidecar or a vanished file should not kill the
			// watcher; report and keep going.
			log.Error().Err(err).Msg("rebuild failed")
			return
		}
		log.Info().Str("result", result.String()).Msg("rebuild complete")
		if opts.OnBuild != nil {
			opts.OnBuild(result)
		}
	}

	rebuild()

	timer := time.NewTimer(debounce(opts))
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("watch cancelled")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if underRoot(event.Name, linkRoot) {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addRecursive(watcher, event.Name); err != nil {
						log.Warn().Err(err).Str("path", event.Name).
							Msg("failed to watch new directory")
					}
				}
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			log.Trace().Str("path", event.Name).Str("op", event.Op.String()).
				Msg("storage change")
			timer.Reset(debounce(opts))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")

		case <-timer.C:
			rebuild()
		}
	}
}

func debounce(opts Options) time.Duration {
	if opts.Debounce > 0 {
		return opts.Debounce
	}
	return DefaultDebounce
}

// addRecursive watches a directory and everything below it. fsnotify
// watches are not recursive on their own.
func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// underRoot reports whether path lives inside root. Rebuild output must
// not feed back into the watch loop when the link root sits inside a
// storage root.
func underRoot(path, root string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return false
	}
	return rel == "." || !strings.HasPrefix(rel, "..")
}
