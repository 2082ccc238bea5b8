// Package cache implements an on-disk, content-hash-keyed cache of the
// diagnostics produced by the last Analyze call for a file, so that `tdl
// lint --cache-dir` across repeated invocations only re-analyzes files
// whose content actually changed. Analyze itself stays pure and
// cache-unaware; this package sits entirely in the CLI layer.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"tdl/internal/diag"
)

// schemaVersion guards against decoding a payload written by an older,
// incompatible version of Entry.
const schemaVersion uint16 = 1

// Digest is a content hash, the cache key.
type Digest [sha256.Size]byte

// HashContent derives the cache key for one file's source text.
func HashContent(content string) Digest {
	return sha256.Sum256([]byte(content))
}

// Entry is the cached payload for one file: the schema version it was
// written under and the diagnostics Analyze produced. The AST itself is
// not cached; reparsing on a cache hit is cheap, and keeping the cached
// payload flat avoids pinning a msgpack encoding to the AST's internal
// shape.
type Entry struct {
	Schema      uint16
	Diagnostics []diag.Diagnostic
}

// Cache stores Entry values on disk under dir, one file per digest.
// Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open returns a Cache rooted at dir, creating dir if needed.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Put serializes and atomically writes entry for key.
func (c *Cache) Put(key Digest, items []diag.Diagnostic) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(Entry{Schema: schemaVersion, Diagnostics: items}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, p)
}

// Get reads the cached diagnostics for key. ok is false on a miss or a
// schema mismatch, never an error in that case.
func (c *Cache) Get(key Digest) (items []diag.Diagnostic, ok bool, err error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var entry Entry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return nil, false, err
	}
	if entry.Schema != schemaVersion {
		return nil, false, nil
	}
	return entry.Diagnostics, true, nil
}
