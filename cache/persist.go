package cache

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shamaton/msgpack/v2"
)

// snapshotVersion is bumped whenever the on-disk layout changes.
const snapshotVersion = 1

// ErrSnapshotVersion indicates a cache file written by an incompatible version.
var ErrSnapshotVersion = errors.New("cache: unsupported snapshot version")

type record struct {
	Key   Key   `msgpack:"key"`
	Entry Entry `msgpack:"entry"`
}

type snapshot struct {
	Version int      `msgpack:"version"`
	Records []record `msgpack:"records"`
}

// Save writes every entry to w as msgpack, least recently used first, so
// that Load restores the same recency order.
func (c *ResultCache) Save(w io.Writer) error {
	c.mu.Lock()
	snap := snapshot{Version: snapshotVersion, Records: make([]record, 0, c.evictList.Len())}
	for elem := c.evictList.Back(); elem != nil; elem = elem.Prev() {
		ce := elem.Value.(*cacheEntry)
		snap.Records = append(snap.Records, record{Key: ce.key, Entry: ce.value})
	}
	c.mu.Unlock()

	if err := msgpack.MarshalWrite(w, &snap); err != nil {
		return fmt.Errorf("cache: encode snapshot: %w", err)
	}

	return nil
}

// Load merges the entries read from r into the cache. Entries in r win over
// existing ones with the same key; the size bound still applies.
func (c *ResultCache) Load(r io.Reader) error {
	var snap snapshot
	if err := msgpack.UnmarshalRead(r, &snap); err != nil {
		return fmt.Errorf("cache: decode snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, rec := range snap.Records {
		c.put(rec.Key, rec.Entry)
	}

	return nil
}

// LoadFile is Load over a file. A missing file leaves the cache unchanged.
func (c *ResultCache) LoadFile(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Load(f)
}

// SaveFile writes the cache to path, replacing it atomically.
func (c *ResultCache) SaveFile(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := c.Save(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
