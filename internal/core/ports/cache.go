package ports

import "github.com/javamap/javamap/internal/core/domain"

// ComponentCache persists and loads discovery results keyed by a fingerprint
// of the source tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ComponentCache interface {
	// Load returns the cached result for the current fingerprint of root.
	// A miss returns (nil, false, nil). A structurally unreadable entry
	// returns an error satisfying errors.Is(err, domain.ErrCacheCorrupt);
	// any other unexpected I/O condition degrades to a miss.
	Load(root string) (*domain.DiscoveryResult, bool, error)

	// Save persists the result, superseding any prior entry for the same
	// fingerprint. The write is atomic: a crash mid-save never leaves a
	// half-written entry visible to a later Load.
	Save(root string, result *domain.DiscoveryResult) error
}

// Fingerprinter computes the cache key for a source tree.
type Fingerprinter interface {
	// Fingerprint digests the root path together with every source file's
	// path and modification time, in a stable order. Any file addition,
	// removal or touch changes the result.
	Fingerprint(root string) (string, error)
}
