// Package build implements the build command: load configuration, walk the
// storage roots and materialize the link tree.
package build

import (
	"github.com/arthur-debert/linkfarm/pkg/builder"
	"github.com/arthur-debert/linkfarm/pkg/config"
	"github.com/arthur-debert/linkfarm/pkg/filesystem"
	"github.com/arthur-debert/linkfarm/pkg/logging"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

// Options holds the options for the build command.
type Options struct {
	// ConfigFile names the config file to load. Empty means discovery.
	ConfigFile string

	// Overrides carries flag values as dot-delimited config keys; they win
	// over every other configuration layer.
	Overrides map[string]interface{}

	// DryRun records the operations a build would perform instead of
	// touching the filesystem.
	DryRun bool

	// FS is the filesystem to build against. Nil means the real one.
	FS types.FS
}

// Result is the outcome of a build command.
type Result struct {
	// Result holds the run counts.
	Result *builder.Result

	// Operations lists the recorded mutations. Only set for dry runs.
	Operations []filesystem.Operation

	// DryRun records whether this was a preview.
	DryRun bool
}

// Build runs a full link tree build.
func Build(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.build")
	log.Debug().
		Str("config", opts.ConfigFile).
		Bool("dry_run", opts.DryRun).
		Msg("Executing command")

	cfg, err := config.Load(opts.ConfigFile, opts.Overrides)
	if err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	var dry *filesystem.DryRun
	if opts.DryRun {
		dry = filesystem.NewDryRun(fsys)
		fsys = dry
	}

	builderOpts, err := cfg.BuilderOptions(fsys)
	if err != nil {
		return nil, err
	}

	b, err := builder.New(builderOpts)
	if err != nil {
		return nil, err
	}

	runResult, err := b.Run()
	result := &Result{Result: runResult, DryRun: opts.DryRun}
	if dry != nil {
		result.Operations = dry.Operations()
	}
	if err != nil {
		// Partial counts still matter: they tell the user how far the
		// build got before it stopped.
		log.Error().Err(err).Msg("build failed")
		return result, err
	}
	return result, nil
}
