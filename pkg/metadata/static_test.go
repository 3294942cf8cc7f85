package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linkfarm/pkg/metadata"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

func TestStaticMetadata(t *testing.T) {
	static := metadata.NewStatic(map[string]types.Metadata{
		"song.flac": {"artist": "Miles Davis", "year": "1959"},
	})

	t.Run("known file", func(t *testing.T) {
		meta, err := static.Metadata("/music/song.flac")
		require.NoError(t, err)
		assert.Equal(t, types.Metadata{"artist": "Miles Davis", "year": "1959"}, meta)
	})

	t.Run("lookup is by base name", func(t *testing.T) {
		meta, err := static.Metadata("/elsewhere/deep/song.flac")
		require.NoError(t, err)
		assert.Equal(t, "Miles Davis", meta["artist"])
	})

	t.Run("unknown file gets empty metadata", func(t *testing.T) {
		meta, err := static.Metadata("/music/other.flac")
		require.NoError(t, err)
		assert.NotNil(t, meta)
		assert.Empty(t, meta)
	})

	t.Run("callers get a copy", func(t *testing.T) {
		meta, err := static.Metadata("/music/song.flac")
		require.NoError(t, err)

		meta["artist"] = "mutated"

		again, err := static.Metadata("/music/song.flac")
		require.NoError(t, err)
		assert.Equal(t, "Miles Davis", again["artist"])
	})
}
