// Package paths provides centralized path handling for linkfarm.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/linkfarm/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for linkfarm
	EnvConfigDir = "LINKFARM_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for linkfarm
	EnvDataDir = "LINKFARM_DATA_DIR"

	// EnvStateDir overrides the XDG state directory for linkfarm
	EnvStateDir = "LINKFARM_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for linkfarm-specific files
	AppDirName = "linkfarm"

	// ConfigFileName is the name of the primary configuration file
	ConfigFileName = "linkfarm.toml"

	// LogFileName is the name of the log file
	LogFileName = "linkfarm.log"
)

// Paths resolves the well-known directories linkfarm reads and writes.
type Paths struct {
	xdgConfig string
	xdgData   string
	xdgState  string
}

// New creates a Paths instance, respecting environment overrides for each
// XDG directory.
func New() *Paths {
	p := &Paths{}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = ExpandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = ExpandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

// ConfigDir returns the XDG config directory for linkfarm
func (p *Paths) ConfigDir() string {
	return p.xdgConfig
}

// DataDir returns the XDG data directory for linkfarm
func (p *Paths) DataDir() string {
	return p.xdgData
}

// StateDir returns the XDG state directory for linkfarm
func (p *Paths) StateDir() string {
	return p.xdgState
}

// ConfigFilePath returns the path to the configuration file in the XDG
// config directory.
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// LogFilePath returns the path to the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ExpandHome expands a leading ~ in paths
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded := ExpandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}
