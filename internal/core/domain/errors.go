package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidComponent is returned when a component fails its construction
	// invariants (empty name or package, nonexistent path).
	ErrInvalidComponent = zerr.New("invalid component")

	// ErrCacheCorrupt is returned when a cache entry exists on disk but cannot
	// be parsed or lacks required structure. Callers must handle it explicitly;
	// it is never folded into an ordinary cache miss.
	ErrCacheCorrupt = zerr.New("cache entry corrupt")

	// ErrDiscoveryFailed wraps any failure on the discovery miss path so the
	// caller sees a single error type regardless of which stage failed.
	ErrDiscoveryFailed = zerr.New("component discovery failed")

	// ErrUnknownComponent is returned when a result is asked for a component
	// name it does not contain.
	ErrUnknownComponent = zerr.New("unknown component")
)
