package metadata_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linkfarm/pkg/builder"
	lferrors "github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/metadata"
	"github.com/arthur-debert/linkfarm/pkg/testutil"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

func TestNewSidecarBuilder(t *testing.T) {
	t.Run("builds from sidecar metadata", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.CreateTree(t, fs, map[string]string{
			"/music/song.flac":           "audio",
			"/music/song.flac.meta.yaml": "artist: Miles Davis\nyear: 1959\n",
		})

		b, err := metadata.NewSidecarBuilder(builder.Options{
			StorageRoot: "/music",
			LinkRoot:    "/links",
			LinkPaths:   []types.Template{{"artist", "year"}},
			FileFilter: types.FileFilterFunc(func(path string) bool {
				return !strings.HasSuffix(path, ".meta.yaml")
			}),
			FS: fs,
		}, "")
		require.NoError(t, err)

		result, err := b.Run()
		require.NoError(t, err)
		assert.Equal(t, 1, result.FilesProcessed)
		assert.Equal(t, 1, result.LinksCreated)
		testutil.AssertSymlinkTo(t, fs, "/links/Miles Davis/1959/song.flac", "/music/song.flac")
	})

	t.Run("sidecars themselves are not filtered out automatically", func(t *testing.T) {
		// The builder links every walked file; excluding sidecar files is
		// the config layer's job. With no filter the sidecar gets linked
		// too, under placeholder segments.
		fs := testutil.NewMemoryFS()
		testutil.CreateTree(t, fs, map[string]string{
			"/music/song.flac":           "audio",
			"/music/song.flac.meta.yaml": "artist: Miles Davis\n",
		})

		b, err := metadata.NewSidecarBuilder(builder.Options{
			StorageRoot: "/music",
			LinkRoot:    "/links",
			LinkPaths:   []types.Template{{"artist"}},
			FS:          fs,
		}, "")
		require.NoError(t, err)

		result, err := b.Run()
		require.NoError(t, err)
		assert.Equal(t, 2, result.FilesProcessed)
	})

	t.Run("metadata source is locked", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.CreateTree(t, fs, map[string]string{"/music/song.flac": "audio"})

		b, err := metadata.NewSidecarBuilder(builder.Options{
			StorageRoot: "/music",
			LinkRoot:    "/links",
			LinkPaths:   []types.Template{{"artist"}},
			FS:          fs,
		}, "")
		require.NoError(t, err)

		err = b.SetMetadataGetter(metadata.NewStatic(nil))
		require.Error(t, err)
		assert.True(t, lferrors.IsErrorCode(err, lferrors.ErrMetadataSourceLocked))
	})

	t.Run("existing metadata getter is replaced", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.CreateTree(t, fs, map[string]string{
			"/music/song.flac":           "audio",
			"/music/song.flac.meta.yaml": "artist: Miles Davis\n",
		})

		static := metadata.NewStatic(map[string]types.Metadata{
			"song.flac": {"artist": "should not win"},
		})
		b, err := metadata.NewSidecarBuilder(builder.Options{
			StorageRoot: "/music",
			LinkRoot:    "/links",
			LinkPaths:   []types.Template{{"artist"}},
			Metadata:    static,
			FS:          fs,
		}, "")
		require.NoError(t, err)

		_, err = b.Run()
		require.NoError(t, err)
		testutil.AssertFileExists(t, fs, "/links/Miles Davis/song.flac")
	})

	t.Run("defaults to the OS filesystem", func(t *testing.T) {
		b, err := metadata.NewSidecarBuilder(builder.Options{
			StorageRoot: t.TempDir(),
			LinkRoot:    t.TempDir(),
			LinkPaths:   []types.Template{{"artist"}},
		}, "")
		require.NoError(t, err)
		assert.NotNil(t, b)
	})
}
