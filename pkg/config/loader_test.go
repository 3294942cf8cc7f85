package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lferrors "github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/paths"
	"github.com/arthur-debert/linkfarm/pkg/testutil"
)

func TestLoadDefaults(t *testing.T) {
	testutil.ChdirTemp(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.LinkRoot)
	assert.False(t, cfg.Hardlink)
	assert.Equal(t, "fail", cfg.OnExisting)
	assert.Equal(t, "yaml", cfg.Metadata.Source)
	assert.Empty(t, cfg.StorageRoot)
	assert.Empty(t, cfg.LinkPaths)
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("discovers linkfarm.toml in the working directory", func(t *testing.T) {
		dir := testutil.ChdirTemp(t)
		content := `storage_root = "/music"
link_root = "/links"
link_paths = ["artist/year", "genre"]
hardlink = true
on_existing = "skip"

[filter]
include = ["*.flac", "*.mp3"]
exclude = ["draft*"]

[metadata]
source = "auto"
suffix = ".info.yaml"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "linkfarm.toml"), []byte(content), 0644))

		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "/music", cfg.StorageRoot)
		assert.Equal(t, "/links", cfg.LinkRoot)
		assert.Equal(t, []string{"artist/year", "genre"}, cfg.LinkPaths)
		assert.True(t, cfg.Hardlink)
		assert.Equal(t, "skip", cfg.OnExisting)
		assert.Equal(t, []string{"*.flac", "*.mp3"}, cfg.Filter.Include)
		assert.Equal(t, []string{"draft*"}, cfg.Filter.Exclude)
		assert.Equal(t, "auto", cfg.Metadata.Source)
		assert.Equal(t, ".info.yaml", cfg.Metadata.Suffix)
	})

	t.Run("falls back to the hidden name", func(t *testing.T) {
		dir := testutil.ChdirTemp(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".linkfarm.toml"),
			[]byte(`link_root = "/hidden"`), 0644))

		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "/hidden", cfg.LinkRoot)
	})

	t.Run("visible name wins over hidden", func(t *testing.T) {
		dir := testutil.ChdirTemp(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "linkfarm.toml"),
			[]byte(`link_root = "/visible"`), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".linkfarm.toml"),
			[]byte(`link_root = "/hidden"`), 0644))

		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "/visible", cfg.LinkRoot)
	})

	t.Run("xdg config dir is the last candidate", func(t *testing.T) {
		testutil.ChdirTemp(t)
		configDir := t.TempDir()
		t.Setenv(paths.EnvConfigDir, configDir)
		require.NoError(t, os.WriteFile(filepath.Join(configDir, paths.ConfigFileName),
			[]byte(`link_root = "/from-xdg"`), 0644))

		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "/from-xdg", cfg.LinkRoot)
	})

	t.Run("explicit path is honored", func(t *testing.T) {
		testutil.ChdirTemp(t)
		path := filepath.Join(t.TempDir(), "custom.toml")
		require.NoError(t, os.WriteFile(path, []byte(`link_root = "/custom"`), 0644))

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "/custom", cfg.LinkRoot)
	})

	t.Run("missing explicit path is an error", func(t *testing.T) {
		testutil.ChdirTemp(t)
		_, err := Load("/does/not/exist.toml", nil)
		require.Error(t, err)
		assert.True(t, lferrors.IsErrorCode(err, lferrors.ErrConfigLoad))
	})

	t.Run("yaml config by extension", func(t *testing.T) {
		testutil.ChdirTemp(t)
		path := filepath.Join(t.TempDir(), "linkfarm.yaml")
		content := `storage_root: /music
link_paths:
  - artist/year
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "/music", cfg.StorageRoot)
		assert.Equal(t, []string{"artist/year"}, cfg.LinkPaths)
	})

	t.Run("malformed toml is a parse error", func(t *testing.T) {
		dir := testutil.ChdirTemp(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "linkfarm.toml"),
			[]byte(`link_root = [unclosed`), 0644))

		_, err := Load("", nil)
		require.Error(t, err)
		assert.True(t, lferrors.IsErrorCode(err, lferrors.ErrConfigParse))
	})
}

func TestLoadEnvironment(t *testing.T) {
	t.Run("top-level keys keep their underscores", func(t *testing.T) {
		testutil.ChdirTemp(t)
		t.Setenv("LINKFARM_STORAGE_ROOT", "/music")
		t.Setenv("LINKFARM_LINK_ROOT", "/links")

		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "/music", cfg.StorageRoot)
		assert.Equal(t, "/links", cfg.LinkRoot)
	})

	t.Run("double underscore nests into sections", func(t *testing.T) {
		testutil.ChdirTemp(t)
		t.Setenv("LINKFARM_METADATA__SOURCE", "index")
		t.Setenv("LINKFARM_METADATA__INDEX", "meta.yaml")

		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "index", cfg.Metadata.Source)
		assert.Equal(t, "meta.yaml", cfg.Metadata.Index)
	})

	t.Run("comma lists become slices", func(t *testing.T) {
		testutil.ChdirTemp(t)
		t.Setenv("LINKFARM_LINK_PATHS", "artist/year,genre")

		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"artist/year", "genre"}, cfg.LinkPaths)
	})

	t.Run("environment overrides the config file", func(t *testing.T) {
		dir := testutil.ChdirTemp(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "linkfarm.toml"),
			[]byte(`link_root = "/from-file"`), 0644))
		t.Setenv("LINKFARM_LINK_ROOT", "/from-env")

		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "/from-env", cfg.LinkRoot)
	})
}

func TestLoadOverrides(t *testing.T) {
	t.Run("flag overrides win over everything", func(t *testing.T) {
		dir := testutil.ChdirTemp(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "linkfarm.toml"),
			[]byte(`link_root = "/from-file"`), 0644))
		t.Setenv("LINKFARM_LINK_ROOT", "/from-env")

		cfg, err := Load("", map[string]interface{}{
			"link_root":       "/from-flag",
			"metadata.source": "xml",
		})
		require.NoError(t, err)
		assert.Equal(t, "/from-flag", cfg.LinkRoot)
		assert.Equal(t, "xml", cfg.Metadata.Source)
	})
}

func TestLoadValidation(t *testing.T) {
	t.Run("bad collision policy", func(t *testing.T) {
		testutil.ChdirTemp(t)
		t.Setenv("LINKFARM_ON_EXISTING", "explode")

		_, err := Load("", nil)
		require.Error(t, err)
		assert.True(t, lferrors.IsErrorCode(err, lferrors.ErrConfigInvalid))
	})

	t.Run("bad template", func(t *testing.T) {
		testutil.ChdirTemp(t)
		t.Setenv("LINKFARM_LINK_PATHS", "artist//year")

		_, err := Load("", nil)
		require.Error(t, err)
		assert.True(t, lferrors.IsErrorCode(err, lferrors.ErrConfigInvalid))
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "storage_root", envKey("LINKFARM_STORAGE_ROOT"))
	assert.Equal(t, "metadata.source", envKey("LINKFARM_METADATA__SOURCE"))
	assert.Equal(t, "filter.include", envKey("LINKFARM_FILTER__INCLUDE"))
}
