package gtfs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRequests(t *testing.T) {
	reqs := FromStatic(testFeed(), Options{})
	var buf bytes.Buffer
	require.NoError(t, SerializeRequests(&buf, reqs))

	got, err := DeserializeRequests(&buf)
	require.NoError(t, err)
	assert.Equal(t, reqs, got)

	_, err = DeserializeRequests(bytes.NewReader([]byte("junk")))
	assert.Error(t, err)
}

func TestImportFile_UsesCache(t *testing.T) {
	dir := t.TempDir()
	feed := filepath.Join(dir, "feed.zip")
	cache := filepath.Join(dir, "feed.gob")
	require.NoError(t, os.WriteFile(feed, []byte("not a zip"), 0o644))

	// a cache written for this exact feed file is trusted without parsing
	info, err := os.Stat(feed)
	require.NoError(t, err)
	reqs := FromStatic(testFeed(), Options{})
	require.NoError(t, writeCache(cache, cacheEntry{
		FeedSize: info.Size(), FeedModTime: info.ModTime().UTC(), Requests: reqs,
	}))

	got, hit, err := ImportFile(feed, cache, Options{})
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, reqs, got)

	// other options miss the cache and hit the parser
	_, hit, err = ImportFile(feed, cache, Options{MaxRoutes: 1})
	assert.Error(t, err)
	assert.False(t, hit)

	// a touched feed makes the cache stale
	later := info.ModTime().Add(time.Hour)
	require.NoError(t, os.Chtimes(feed, later, later))
	_, hit, err = ImportFile(feed, cache, Options{})
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestImportFile_Errors(t *testing.T) {
	dir := t.TempDir()
	_, _, err := ImportFile(filepath.Join(dir, "missing.zip"), "", Options{})
	assert.Error(t, err)

	feed := filepath.Join(dir, "feed.zip")
	require.NoError(t, os.WriteFile(feed, []byte("not a zip"), 0o644))
	cache := filepath.Join(dir, "feed.gob")
	require.NoError(t, os.WriteFile(cache, []byte("corrupted"), 0o644))
	_, hit, err := ImportFile(feed, cache, Options{})
	assert.Error(t, err)
	assert.False(t, hit)
}
