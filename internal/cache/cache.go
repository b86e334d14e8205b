// Package cache stores per-file formatting results on disk so unchanged
// inputs are not parsed again. Entries are msgpack-encoded and keyed by a
// SHA-256 digest of the source text and everything that affects the result.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion is bumped whenever Entry changes shape.
const schemaVersion uint16 = 1

var log = commonlog.GetLogger("swiftfmt.cache")

// ErrSchema is returned by Get for entries written by another version.
var ErrSchema = errors.New("cache entry has a different schema")

// Digest identifies a cache entry.
type Digest [sha256.Size]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Key hashes src together with salt, which must capture everything besides
// the source that changes the result (tool version, rules, configuration).
func Key(src []byte, salt string) Digest {
	h := sha256.New()
	fmt.Fprintf(h, "%d\x00%s\x00", len(salt), salt)
	h.Write(src)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// Entry is the cached outcome of running the rules over one file.
type Entry struct {
	Schema   uint16
	Output   string
	Findings []Finding
}

// Finding is a diagnostic in cache form.
type Finding struct {
	Rule     string
	Severity uint8
	Text     string
	Line     int
	Column   int
}

// Cache is a directory of entries. A nil *Cache is a valid, always-empty
// cache. It is safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open returns the cache rooted at dir, creating it if needed. An empty dir
// selects $XDG_CACHE_HOME/swiftfmt, falling back to ~/.cache/swiftfmt.
func Open(dir string) (*Cache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("locating cache directory: %w", err)
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "swiftfmt")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	log.Debugf("cache directory %s", dir)
	return &Cache{dir: dir}, nil
}

// Dir returns the cache's root directory.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := key.String()
	// Shard by the first byte to keep directories small.
	return filepath.Join(c.dir, "files", hexKey[:2], hexKey+".mp")
}

// Get reads the entry for key. A missing entry is not an error.
func (c *Cache) Get(key Digest) (*Entry, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading cache entry %s: %w", key, err)
	}

	var e Entry
	if err := msgpack.Unmarshal(data, &e); err != nil {
		return nil, false, fmt.Errorf("decoding cache entry %s: %w", key, err)
	}
	if e.Schema != schemaVersion {
		return nil, false, fmt.Errorf("%w: %d", ErrSchema, e.Schema)
	}
	log.Debug("cache hit", "key", key.String())
	return &e, true, nil
}

// Put writes the entry for key, replacing any previous one atomically.
func (c *Cache) Put(key Digest, e *Entry) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("creating cache shard: %w", err)
	}

	stored := *e
	stored.Schema = schemaVersion
	data, err := msgpack.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("encoding cache entry %s: %w", key, err)
	}

	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return fmt.Errorf("creating cache entry: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing cache entry %s: %w", key, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("writing cache entry %s: %w", key, err)
	}
	if err = os.Rename(f.Name(), p); err != nil {
		return fmt.Errorf("storing cache entry %s: %w", key, err)
	}
	log.Debug("cache store", "key", key.String(), "bytes", len(data))
	return nil
}

// Clear removes every entry.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.RemoveAll(filepath.Join(c.dir, "files")); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	log.Infof("cleared cache %s", c.dir)
	return nil
}
