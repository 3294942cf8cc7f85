package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/linkfarm/pkg/builder"
	lferrors "github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/paths"
)

// Load merges configuration from all layers and validates the result.
// configFile, when non-empty, names the config file to use; it must exist.
// When empty, ./linkfarm.toml, ./.linkfarm.toml and the XDG config dir are
// tried in order and all may be absent. overrides carries flag values as
// dot-delimited koanf keys ("link_root", "metadata.source") and wins over
// every other layer.
func Load(configFile string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, lferrors.Wrap(err, lferrors.ErrInternal,
			"failed to load built-in defaults")
	}

	path, err := resolveConfigFile(configFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, lferrors.Wrapf(err, lferrors.ErrConfigParse,
				"failed to load config from %s", path)
		}
	}

	if err := k.Load(env.Provider("LINKFARM_", ".", envKey), nil); err != nil {
		return nil, lferrors.Wrap(err, lferrors.ErrConfigLoad,
			"failed to load environment variables")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, lferrors.Wrap(err, lferrors.ErrConfigLoad,
				"failed to apply flag overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, lferrors.Wrap(err, lferrors.ErrConfigParse,
			"failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the parts of the configuration that can be judged without
// touching the filesystem.
func (c *Config) Validate() error {
	if _, err := ParseTemplates(c.LinkPaths); err != nil {
		return err
	}
	if _, err := builder.ParseExistingPolicy(c.OnExisting); err != nil {
		return err
	}
	return nil
}

// resolveConfigFile picks the config file to load. An explicit path must
// exist; otherwise the first discovery candidate that exists wins, and none
// existing is fine.
func resolveConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", lferrors.Wrapf(err, lferrors.ErrConfigLoad,
				"config file not found: %s", explicit)
		}
		return explicit, nil
	}

	candidates := []string{
		"linkfarm.toml",
		".linkfarm.toml",
		paths.New().ConfigFilePath(),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// parserFor selects the koanf parser by file extension. TOML is the
// default; .yaml and .yml files parse as YAML.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps LINKFARM_* variables to koanf keys. Double underscores nest
// into sections so single underscores survive in key names:
// LINKFARM_STORAGE_ROOT -> storage_root,
// LINKFARM_METADATA__SOURCE -> metadata.source.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "LINKFARM_"))
	return strings.ReplaceAll(s, "__", ".")
}
