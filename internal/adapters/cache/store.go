// Package cache implements the fingerprint-keyed, size-bounded component
// cache.
package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/javamap/javamap/internal/core/domain"
	"github.com/javamap/javamap/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	schemaVersion = "1.0"
	entryPrefix   = "components_"
	entrySuffix   = ".json"

	// memEntries bounds the in-process LRU front. It holds serialized entry
	// bytes keyed by fingerprint; decoded results are never shared between
	// callers, so the front can only save a disk read, never alias state.
	memEntries = 16
)

var _ ports.ComponentCache = (*Store)(nil)

// Store persists discovery results as one JSON file per tree fingerprint.
// Writes go through a temporary file and an atomic rename; before each
// write, oldest-modified entries are evicted until the directory is back
// under its byte budget.
type Store struct {
	dir      string
	maxBytes int64
	fp       ports.Fingerprinter
	log      ports.Logger
	mem      *lru.Cache[string, []byte]
}

// NewStore creates the cache directory if needed and returns the store.
func NewStore(dir string, maxBytes int64, fp ports.Fingerprinter, log ports.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create cache directory"), "dir", dir)
	}
	mem, err := lru.New[string, []byte](memEntries)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create cache memory front")
	}
	return &Store{
		dir:      filepath.Clean(dir),
		maxBytes: maxBytes,
		fp:       fp,
		log:      log,
		mem:      mem,
	}, nil
}

// Load returns the cached result for the current fingerprint of root.
// Missing entries and version mismatches are misses; structurally invalid
// component or edge records invalidate the whole entry into a miss (a
// half-built graph is worse than a rescan); an unparseable file is the
// distinct cache-error category. Any other unexpected I/O condition
// degrades to a miss.
func (s *Store) Load(root string) (*domain.DiscoveryResult, bool, error) {
	key, err := s.fp.Fingerprint(root)
	if err != nil {
		s.log.Warn("cache fingerprint failed: " + err.Error())
		return nil, false, nil
	}

	data, ok := s.mem.Get(key)
	if !ok {
		data, err = os.ReadFile(s.entryPath(key))
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				s.log.Warn("cache read failed: " + err.Error())
			}
			return nil, false, nil
		}
	}

	result, ok, err := s.decode(data)
	if err != nil || !ok {
		return nil, false, err
	}

	s.mem.Add(key, data)
	return result, true, nil
}

// Save persists the result for the current fingerprint of root, evicting
// old entries first and replacing any prior entry for the same key.
func (s *Store) Save(root string, result *domain.DiscoveryResult) error {
	if err := s.evict(); err != nil {
		return err
	}

	key, err := s.fp.Fingerprint(root)
	if err != nil {
		return zerr.Wrap(err, "failed to fingerprint tree for cache save")
	}

	data, err := encode(result)
	if err != nil {
		return err
	}

	// Temp file in the cache directory itself so the rename stays on one
	// filesystem and is atomic.
	tmp, err := os.CreateTemp(s.dir, entryPrefix+"*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary cache file")
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to write cache entry")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to close temporary cache file")
	}
	if err := os.Rename(tmp.Name(), s.entryPath(key)); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to publish cache entry")
	}

	s.mem.Add(key, data)
	return nil
}

func (s *Store) entryPath(key string) string {
	return filepath.Join(s.dir, entryPrefix+key+entrySuffix)
}

// evict removes oldest-modified cache files until the directory's total
// size is back under budget. It runs independently of the key being
// written and may delete entries unrelated to the current save.
func (s *Store) evict() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return zerr.Wrap(err, "failed to read cache directory")
	}

	type cacheFile struct {
		name  string
		size  int64
		mtime time.Time
	}

	var files []cacheFile
	var total int64
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, entryPrefix) || !strings.HasSuffix(name, entrySuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, cacheFile{name: name, size: info.Size(), mtime: info.ModTime()})
		total += info.Size()
	}

	if total <= s.maxBytes {
		return nil
	}

	sort.Slice(files, func(i, j int) bool { return files[i].mtime.Before(files[j].mtime) })

	for _, file := range files {
		if total <= s.maxBytes {
			break
		}
		if err := os.Remove(filepath.Join(s.dir, file.name)); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to evict cache entry"), "entry", file.name)
		}
		s.mem.Remove(strings.TrimSuffix(strings.TrimPrefix(file.name, entryPrefix), entrySuffix))
		total -= file.size
	}

	return nil
}
