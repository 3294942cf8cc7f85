package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linkfarm/pkg/testutil"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

func TestSegmentFor(t *testing.T) {
	meta := types.Metadata{
		"genre":  "jazz",
		"empty":  "",
		"nested": "Rock/Pop",
		"hidden": ".config",
	}

	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"present_value", "genre", "jazz"},
		{"absent_field_yields_placeholder", "missing", Placeholder},
		{"empty_value_yields_placeholder", "empty", Placeholder},
		{"separator_flattened", "nested", "Rock-Pop"},
		{"leading_dot_replaced", "hidden", "_config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, segmentFor(meta, tt.field))
		})
	}
}

func TestSanitizeSegment(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain_value", "jazz", "jazz"},
		{"single_separator", "a/b", "a-b"},
		{"many_separators", "a/b/c/d", "a-b-c-d"},
		{"dot_dot_stays_one_level", "..", "_."},
		{"single_dot", ".", "_"},
		{"hidden_name", ".hidden", "_hidden"},
		{"dot_after_separator_replacement", "/.x", "-.x"},
		{"interior_dot_untouched", "v1.2", "v1.2"},
		{"placeholder_passes_through", "-", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeSegment(tt.value))
		})
	}
}

func TestEnsureDirCountsOnlyNewDirectories(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	require.NoError(t, mfs.MkdirAll("/links/jazz", 0755))

	result := &Result{}
	m := &materializer{
		fs:        mfs,
		linkRoot:  "/links",
		result:    result,
		knownDirs: make(map[string]bool),
	}

	// jazz already exists; 1959 and 1959/mono are new
	require.NoError(t, m.ensureDir("/links/jazz/1959/mono"))
	assert.Equal(t, 2, result.DirsCreated)

	// A second call for the same path is a cache hit
	require.NoError(t, m.ensureDir("/links/jazz/1959/mono"))
	assert.Equal(t, 2, result.DirsCreated)

	// A sibling under a now-known prefix adds just itself
	require.NoError(t, m.ensureDir("/links/jazz/1959/stereo"))
	assert.Equal(t, 3, result.DirsCreated)
}
