package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/linkfarm/pkg/types"
)

func TestFileFilterFunc(t *testing.T) {
	onlyTxt := types.FileFilterFunc(func(path string) bool {
		return len(path) > 4 && path[len(path)-4:] == ".txt"
	})

	assert.True(t, onlyTxt.Match("notes.txt"))
	assert.False(t, onlyTxt.Match("photo.jpg"))
}

func TestMetadataGetterFunc(t *testing.T) {
	getter := types.MetadataGetterFunc(func(path string) (types.Metadata, error) {
		return types.Metadata{"path": path}, nil
	})

	meta, err := getter.Metadata("songs/track.flac")
	assert.NoError(t, err)
	assert.Equal(t, "songs/track.flac", meta["path"])
}

func TestMetadataClone(t *testing.T) {
	t.Run("nil_clones_to_nil", func(t *testing.T) {
		var m types.Metadata
		assert.Nil(t, m.Clone())
	})

	t.Run("clone_is_independent", func(t *testing.T) {
		orig := types.Metadata{"genre": "jazz"}
		clone := orig.Clone()
		clone["genre"] = "rock"

		assert.Equal(t, "jazz", orig["genre"])
		assert.Equal(t, "rock", clone["genre"])
	})
}

func TestTemplateString(t *testing.T) {
	tests := []struct {
		name     string
		template types.Template
		want     string
	}{
		{"empty", types.Template{}, ""},
		{"single_field", types.Template{"genre"}, "genre"},
		{"multiple_fields", types.Template{"genre", "year"}, "genre/year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.template.String())
		})
	}
}
