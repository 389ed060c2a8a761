package domain

// Settings is the configuration surface of the discovery subsystem.
type Settings struct {
	// CacheDir is the directory holding persisted cache entries.
	CacheDir string

	// MaxCacheMB bounds the total size of the cache directory in megabytes.
	// Eviction removes oldest-modified entries until back under this budget.
	MaxCacheMB int

	// MainRoot and TestRoot are the conventional source roots, relative to
	// the repository path. A missing root is tolerated and skipped.
	MainRoot string
	TestRoot string

	// Ignores holds extra directory or file patterns skipped by the walker,
	// matched with filepath.Match against the base name.
	Ignores []string
}

// DefaultSettings returns the defaults applied when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		CacheDir:   ".component_cache",
		MaxCacheMB: 100,
		MainRoot:   "src/main/java",
		TestRoot:   "src/test/java",
	}
}

// MaxCacheBytes returns the cache budget in bytes.
func (s Settings) MaxCacheBytes() int64 {
	return int64(s.MaxCacheMB) * 1024 * 1024
}
