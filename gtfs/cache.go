package gtfs

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/theoremus-urban-solutions/transport-catalogue/requests"
)

// cacheEntry is the gob payload of an import cache file. The feed's size,
// modification time and the options identify what the records were built from.
type cacheEntry struct {
	FeedSize    int64
	FeedModTime time.Time
	MaxRoutes   int
	Requests    []requests.BaseRequest
}

// SerializeRequests encodes imported records using gob encoding.
//
// Example:
//
//	reqs, _ := gtfs.Import(zipBytes, gtfs.Options{})
//	var buf bytes.Buffer
//	if err := gtfs.SerializeRequests(&buf, reqs); err != nil {
//	    // handle error
//	}
func SerializeRequests(w io.Writer, reqs []requests.BaseRequest) error {
	if err := gob.NewEncoder(w).Encode(reqs); err != nil {
		return fmt.Errorf("failed to encode imported records: %w", err)
	}
	return nil
}

// DeserializeRequests decodes records written by SerializeRequests
func DeserializeRequests(r io.Reader) ([]requests.BaseRequest, error) {
	var reqs []requests.BaseRequest
	if err := gob.NewDecoder(r).Decode(&reqs); err != nil {
		return nil, fmt.Errorf("failed to decode imported records: %w", err)
	}
	return reqs, nil
}

// ImportFile imports the feed at path. When cachePath is set, records from a
// cache file written for the same feed and options are reused, and a fresh
// import refreshes the cache. The bool reports a cache hit.
//
// Example:
//
//	reqs, hit, err := gtfs.ImportFile("feed.zip", "feed.gob", gtfs.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
func ImportFile(path, cachePath string, opts Options) ([]requests.BaseRequest, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to stat GTFS feed: %w", err)
	}
	want := cacheEntry{FeedSize: info.Size(), FeedModTime: info.ModTime().UTC(), MaxRoutes: opts.MaxRoutes}

	if cachePath != "" {
		if reqs, ok := readCache(cachePath, want); ok {
			return reqs, true, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read GTFS feed: %w", err)
	}
	reqs, err := Import(data, opts)
	if err != nil {
		return nil, false, err
	}
	if cachePath != "" {
		want.Requests = reqs
		if err := writeCache(cachePath, want); err != nil {
			return nil, false, err
		}
	}
	return reqs, false, nil
}

// readCache treats unreadable, corrupted and stale caches as misses
func readCache(path string, want cacheEntry) ([]requests.BaseRequest, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var entry cacheEntry
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&entry); err != nil {
		return nil, false
	}
	if entry.FeedSize != want.FeedSize || !entry.FeedModTime.Equal(want.FeedModTime) || entry.MaxRoutes != want.MaxRoutes {
		return nil, false
	}
	return entry.Requests, true
}

func writeCache(path string, entry cacheEntry) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(entry); err != nil {
		return fmt.Errorf("failed to encode import cache: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write import cache: %w", err)
	}
	return nil
}
