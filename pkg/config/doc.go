// Package config loads the tool's layered configuration. Values merge in
// order: embedded defaults, then a config file (./linkfarm.toml,
// ./.linkfarm.toml or the XDG config dir), then LINKFARM_* environment
// variables, then explicit overrides from command-line flags. The result
// can be turned into builder options with Config.BuilderOptions.
package config
