package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/javamap/javamap/internal/adapters/cache"
	"github.com/javamap/javamap/internal/adapters/fs"
	"github.com/javamap/javamap/internal/core/domain"
	"github.com/javamap/javamap/internal/core/ports"
	"github.com/javamap/javamap/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func fixedFingerprinter(ctrl *gomock.Controller, key string) *mocks.MockFingerprinter {
	fp := mocks.NewMockFingerprinter(ctrl)
	fp.EXPECT().Fingerprint(gomock.Any()).Return(key, nil).AnyTimes()
	return fp
}

func sampleResult(t *testing.T) *domain.DiscoveryResult {
	t.Helper()
	dir := t.TempDir()

	billing, err := domain.NewComponent(
		domain.NewInternedString("billing"),
		domain.NewInternedString("com.acme.billing"),
		dir,
		[]string{filepath.Join(dir, "Billing.java")},
		map[string]struct{}{"com.acme.shipping": {}},
		false,
		domain.Metadata{FileCount: 1, TotalLines: 42, HasInterfaces: true, ContentHash: "00000000deadbeef"},
	)
	require.NoError(t, err)

	shipping, err := domain.NewComponent(
		domain.NewInternedString("shipping"),
		domain.NewInternedString("com.acme.shipping"),
		dir,
		[]string{filepath.Join(dir, "Shipping.java")},
		nil,
		false,
		domain.Metadata{FileCount: 1, TotalLines: 7},
	)
	require.NoError(t, err)

	graph := domain.NewDependencyGraph()
	graph.AddNode(billing.Name)
	graph.AddNode(shipping.Name)
	graph.AddEdge(billing.Name, shipping.Name)

	return &domain.DiscoveryResult{
		Components: map[domain.InternedString]*domain.Component{
			billing.Name:  billing,
			shipping.Name: shipping,
		},
		Graph: graph,
	}
}

func newStore(t *testing.T, dir string, maxBytes int64, fp ports.Fingerprinter, log ports.Logger) *cache.Store {
	t.Helper()
	store, err := cache.NewStore(dir, maxBytes, fp, log)
	require.NoError(t, err)
	return store
}

func TestStore_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := newStore(t, t.TempDir(), 1<<20, fixedFingerprinter(ctrl, "key1"), quietLogger(ctrl))

	want := sampleResult(t)
	require.NoError(t, store.Save("tree", want))

	got, ok, err := store.Load("tree")
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, got.Components, 2)
	billing := got.Components[domain.NewInternedString("billing")]
	require.NotNil(t, billing)
	assert.Equal(t, "com.acme.billing", billing.Package.String())
	assert.Equal(t, []string{"com.acme.shipping"}, billing.DependencyList())
	assert.Equal(t, 42, billing.Meta.TotalLines)
	assert.True(t, billing.Meta.HasInterfaces)
	assert.Equal(t, "00000000deadbeef", billing.Meta.ContentHash)

	assert.Equal(t, 2, got.Graph.NodeCount())
	assert.Equal(t, 1, got.Graph.EdgeCount())
	assert.Equal(t,
		[]domain.InternedString{domain.NewInternedString("shipping")},
		got.Graph.Dependencies(domain.NewInternedString("billing")))
}

func TestStore_LoadMissesWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := newStore(t, t.TempDir(), 1<<20, fixedFingerprinter(ctrl, "key1"), quietLogger(ctrl))

	got, ok, err := store.Load("tree")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_CorruptEntryIsAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	store := newStore(t, dir, 1<<20, fixedFingerprinter(ctrl, "key1"), quietLogger(ctrl))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "components_key1.json"), []byte("{not json"), 0o600))

	_, ok, err := store.Load("tree")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrCacheCorrupt)
}

func TestStore_MissingKeysAreCorrupt(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	store := newStore(t, dir, 1<<20, fixedFingerprinter(ctrl, "key1"), quietLogger(ctrl))

	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "components_key1.json"),
		[]byte(`{"version": "1.0"}`), 0o600))

	_, ok, err := store.Load("tree")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrCacheCorrupt)
}

func TestStore_VersionMismatchIsAMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	store := newStore(t, dir, 1<<20, fixedFingerprinter(ctrl, "key1"), quietLogger(ctrl))

	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "components_key1.json"),
		[]byte(`{"version": "2.0", "timestamp": "2024-01-01T00:00:00Z", "components": [], "edges": []}`), 0o600))

	got, ok, err := store.Load("tree")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_VersionMismatchBeatsMissingKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	store := newStore(t, dir, 1<<20, fixedFingerprinter(ctrl, "key1"), quietLogger(ctrl))

	// An entry from another schema version is a miss even when it lacks
	// the components and edges keys entirely.
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "components_key1.json"),
		[]byte(`{"version": "2.0"}`), 0o600))

	got, ok, err := store.Load("tree")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_InvalidComponentRecordIsAMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any())
	store := newStore(t, dir, 1<<20, fixedFingerprinter(ctrl, "key1"), log)

	// A component whose path no longer exists fails validation.
	entry := `{
  "version": "1.0",
  "timestamp": "2024-01-01T00:00:00Z",
  "components": [
    {
      "name": "billing",
      "package": "com.acme.billing",
      "path": "` + filepath.ToSlash(filepath.Join(dir, "gone")) + `",
      "source_files": [],
      "dependencies": [],
      "is_test": false,
      "metadata": {}
    }
  ],
  "edges": []
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "components_key1.json"), []byte(entry), 0o600))

	got, ok, err := store.Load("tree")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_MtimeChangeInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheDir := t.TempDir()

	tree := t.TempDir()
	src := filepath.Join(tree, "Billing.java")
	require.NoError(t, os.WriteFile(src, []byte("package com.acme.billing;"), 0o600))

	fp := fs.NewFingerprinter(fs.NewWalker(nil))
	store := newStore(t, cacheDir, 1<<20, fp, quietLogger(ctrl))

	require.NoError(t, store.Save(tree, sampleResult(t)))
	_, ok, err := store.Load(tree)
	require.NoError(t, err)
	require.True(t, ok)

	stamp := time.Now().Add(3 * time.Hour)
	require.NoError(t, os.Chtimes(src, stamp, stamp))

	_, ok, err = store.Load(tree)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_EvictsOldestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	oldPath := filepath.Join(dir, "components_old.json")
	newPath := filepath.Join(dir, "components_new.json")
	require.NoError(t, os.WriteFile(oldPath, make([]byte, 600), 0o600))
	require.NoError(t, os.WriteFile(newPath, make([]byte, 600), 0o600))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	store := newStore(t, dir, 700, fixedFingerprinter(ctrl, "key1"), quietLogger(ctrl))
	require.NoError(t, store.Save("tree", sampleResult(t)))

	_, err := os.Stat(oldPath)
	assert.True(t, os.IsNotExist(err), "oldest entry should have been evicted")
	_, err = os.Stat(newPath)
	assert.NoError(t, err, "newer entry should survive")
	_, err = os.Stat(filepath.Join(dir, "components_key1.json"))
	assert.NoError(t, err)
}

func TestStore_SaveReplacesExistingEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	store := newStore(t, dir, 1<<20, fixedFingerprinter(ctrl, "key1"), quietLogger(ctrl))

	require.NoError(t, store.Save("tree", sampleResult(t)))

	replacement := &domain.DiscoveryResult{
		Components: map[domain.InternedString]*domain.Component{},
		Graph:      domain.NewDependencyGraph(),
	}
	require.NoError(t, store.Save("tree", replacement))

	got, ok, err := store.Load("tree")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, got.Components)
}
