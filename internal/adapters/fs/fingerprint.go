package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sort"

	"github.com/javamap/javamap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter computes the cache key for a source tree: a sha256 digest
// over the root path plus every source file's (path, mtime) pair in sorted
// order. The digest is cryptographic on purpose; cache keys must not
// collide across unrelated trees.
type Fingerprinter struct {
	walker *Walker
}

// NewFingerprinter creates a Fingerprinter backed by the given walker.
func NewFingerprinter(walker *Walker) *Fingerprinter {
	return &Fingerprinter{walker: walker}
}

// Fingerprint digests root and the (path, mtime) of every source file under
// it. Any file addition, removal or modification time change anywhere in
// the tree changes the result and forces a cache miss.
func (f *Fingerprinter) Fingerprint(root string) (string, error) {
	hasher := sha256.New()
	_, _ = hasher.Write([]byte(root))

	var paths []string
	for path := range f.walker.SourceFiles(root, JavaExt) {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", path)
		}
		_, _ = fmt.Fprintf(hasher, "%s:%d", path, info.ModTime().UnixNano())
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
