// Package genconfig implements the gen-config command, which prints or
// writes a starter configuration file.
package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/linkfarm/pkg/config"
	lferrors "github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/filesystem"
	"github.com/arthur-debert/linkfarm/pkg/logging"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

// DefaultConfigName is where gen-config writes when no path is given.
const DefaultConfigName = "linkfarm.toml"

// Options holds the options for the gen-config command.
type Options struct {
	// Write writes the starter config to Path instead of only returning it.
	Write bool

	// Path is the file to write. Empty means DefaultConfigName in the
	// working directory.
	Path string

	// FS is the filesystem to write through. Nil means the real one.
	FS types.FS
}

// Result is the outcome of a gen-config run.
type Result struct {
	// ConfigContent is the starter configuration.
	ConfigContent string

	// FileWritten is the path written, or empty when nothing was
	// written (print mode, or the file already existed).
	FileWritten string
}

// GenConfig returns the starter configuration and, in write mode, writes
// it to disk. An existing file is never overwritten; it is reported and
// skipped.
func GenConfig(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.genconfig")
	log.Debug().
		Bool("write", opts.Write).
		Str("path", opts.Path).
		Msg("Executing command")

	result := &Result{ConfigContent: config.StarterContent()}

	if !opts.Write {
		return result, nil
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	path := opts.Path
	if path == "" {
		path = DefaultConfigName
	}

	if _, err := fsys.Lstat(path); err == nil {
		log.Warn().Str("path", path).Msg("Config file already exists, skipping")
		return result, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return result, lferrors.Wrapf(err, lferrors.ErrFileAccess,
				"failed to create directory %s", dir)
		}
	}

	if err := fsys.WriteFile(path, []byte(result.ConfigContent), 0644); err != nil {
		return result, lferrors.Wrapf(err, lferrors.ErrFileAccess,
			"failed to write config to %s", path)
	}

	log.Info().Str("path", path).Msg("Written config file")
	result.FileWritten = path
	return result, nil
}
