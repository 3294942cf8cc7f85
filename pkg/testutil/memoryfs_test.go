package testutil_test

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linkfarm/pkg/testutil"
)

func TestMemoryFSBasicOperations(t *testing.T) {
	mfs := testutil.NewMemoryFS()

	require.NoError(t, mfs.MkdirAll("/storage/music", 0755))
	require.NoError(t, mfs.WriteFile("/storage/music/track.flac", []byte("audio"), 0644))

	data, err := mfs.ReadFile("/storage/music/track.flac")
	require.NoError(t, err)
	assert.Equal(t, "audio", string(data))

	info, err := mfs.Stat("/storage/music")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = mfs.ReadFile("/storage/music/missing.flac")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFSReadDirSorted(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.CreateTree(t, mfs, map[string]string{
		"/storage/zebra.txt":  "",
		"/storage/alpha.txt":  "",
		"/storage/middle.txt": "",
	})

	entries, err := mfs.ReadDir("/storage")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	names := []string{entries[0].Name(), entries[1].Name(), entries[2].Name()}
	assert.Equal(t, []string{"alpha.txt", "middle.txt", "zebra.txt"}, names)
}

func TestMemoryFSSymlink(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.CreateTree(t, mfs, map[string]string{
		"/storage/photo.jpg": "pixels",
	})
	require.NoError(t, mfs.MkdirAll("/links", 0755))

	require.NoError(t, mfs.Symlink("/storage/photo.jpg", "/links/photo.jpg"))

	testutil.AssertSymlinkTo(t, mfs, "/links/photo.jpg", "/storage/photo.jpg")

	// Reading through the symlink yields the target content
	data, err := mfs.ReadFile("/links/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))

	// Creating over an existing entry fails like the real filesystem
	err = mfs.Symlink("/storage/photo.jpg", "/links/photo.jpg")
	require.Error(t, err)
	assert.True(t, os.IsExist(err))
}

func TestMemoryFSHardLink(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.CreateTree(t, mfs, map[string]string{
		"/storage/photo.jpg": "pixels",
	})
	require.NoError(t, mfs.MkdirAll("/links", 0755))

	require.NoError(t, mfs.Link("/storage/photo.jpg", "/links/photo.jpg"))

	testutil.AssertHardlinkTo(t, mfs, "/links/photo.jpg", "/storage/photo.jpg")

	data, err := mfs.ReadFile("/links/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))

	t.Run("linking_directories_fails", func(t *testing.T) {
		err := mfs.Link("/storage", "/links/storage")
		assert.Error(t, err)
	})

	t.Run("link_over_existing_fails", func(t *testing.T) {
		err := mfs.Link("/storage/photo.jpg", "/links/photo.jpg")
		require.Error(t, err)
		assert.True(t, os.IsExist(err))
	})
}

func TestMemoryFSErrorInjection(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.CreateTree(t, mfs, map[string]string{
		"/storage/file.txt": "content",
	})

	injected := errors.New("injected failure")

	t.Run("read_error", func(t *testing.T) {
		mfs.WithError("/storage/file.txt", injected)

		_, err := mfs.ReadFile("/storage/file.txt")
		assert.Equal(t, injected, err)
	})

	t.Run("symlink_error", func(t *testing.T) {
		mfs.WithError("/links/file.txt", injected)
		require.NoError(t, mfs.MkdirAll("/links", 0755))

		err := mfs.Symlink("/storage/file.txt", "/links/file.txt")
		assert.Equal(t, injected, err)
	})

	t.Run("mkdir_error", func(t *testing.T) {
		mfs.WithError("/blocked", injected)

		err := mfs.MkdirAll("/blocked", 0755)
		assert.Equal(t, injected, err)
	})
}

func TestMemoryFSStats(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.CreateTree(t, mfs, map[string]string{
		"/storage/file.txt": "content",
	})

	reads, _ := mfs.Stats()
	_, err := mfs.ReadFile("/storage/file.txt")
	require.NoError(t, err)
	_, err = mfs.ReadFile("/storage/file.txt")
	require.NoError(t, err)

	readsAfter, _ := mfs.Stats()
	assert.Equal(t, reads+2, readsAfter)
}

func TestMemoryFSRemove(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.CreateTree(t, mfs, map[string]string{
		"/storage/a/one.txt": "1",
		"/storage/a/two.txt": "2",
	})

	t.Run("remove_non_empty_dir_fails", func(t *testing.T) {
		assert.Error(t, mfs.Remove("/storage/a"))
	})

	t.Run("remove_file", func(t *testing.T) {
		require.NoError(t, mfs.Remove("/storage/a/one.txt"))
		testutil.AssertNotExists(t, mfs, "/storage/a/one.txt")
	})

	t.Run("remove_all", func(t *testing.T) {
		require.NoError(t, mfs.RemoveAll("/storage"))
		testutil.AssertNotExists(t, mfs, "/storage/a/two.txt")
		testutil.AssertNotExists(t, mfs, "/storage")
	})
}
