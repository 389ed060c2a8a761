package discovery_test

import (
	"path/filepath"
	"testing"

	"github.com/javamap/javamap/internal/core/domain"
	"github.com/javamap/javamap/internal/engine/discovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileScan(dir, name, pkg string, lines int) domain.FileScan {
	return domain.FileScan{
		Path:        filepath.Join(dir, name),
		Dir:         dir,
		Package:     pkg,
		Lines:       lines,
		ContentHash: uint64(len(name)),
	}
}

func TestAggregate_GroupsByPackage(t *testing.T) {
	dir := t.TempDir()
	scans := []domain.FileScan{
		fileScan(dir, "Billing.java", "com.acme.billing", 10),
		fileScan(dir, "Invoice.java", "com.acme.billing", 20),
		fileScan(dir, "Shipping.java", "com.acme.shipping", 5),
	}

	out := make(map[domain.InternedString]*domain.Component)
	discovery.Aggregate(scans, false, domain.NewRunLog(), out)

	require.Len(t, out, 2)
	billing := out[domain.NewInternedString("billing")]
	require.NotNil(t, billing)
	assert.Equal(t, 2, billing.Meta.FileCount)
	assert.Equal(t, 30, billing.Meta.TotalLines)

	shipping := out[domain.NewInternedString("shipping")]
	require.NotNil(t, shipping)
	assert.Equal(t, 1, shipping.Meta.FileCount)
}

func TestAggregate_ExcludesFilesWithoutPackage(t *testing.T) {
	dir := t.TempDir()
	scans := []domain.FileScan{
		fileScan(dir, "Orphan.java", "", 10),
	}

	out := make(map[domain.InternedString]*domain.Component)
	discovery.Aggregate(scans, false, domain.NewRunLog(), out)

	assert.Empty(t, out)
}

func TestAggregate_TestRootSuffixesNames(t *testing.T) {
	dir := t.TempDir()
	out := make(map[domain.InternedString]*domain.Component)

	discovery.Aggregate([]domain.FileScan{
		fileScan(dir, "Billing.java", "com.acme.billing", 10),
	}, false, domain.NewRunLog(), out)
	discovery.Aggregate([]domain.FileScan{
		fileScan(dir, "BillingTest.java", "com.acme.billing", 10),
	}, true, domain.NewRunLog(), out)

	require.Len(t, out, 2)
	assert.Contains(t, out, domain.NewInternedString("billing"))
	assert.Contains(t, out, domain.NewInternedString("billingTest"))
}

func TestAggregate_ReportsInvalidGroupsAndContinues(t *testing.T) {
	dir := t.TempDir()
	scans := []domain.FileScan{
		fileScan(dir, "Billing.java", "com.acme.billing", 10),
		fileScan(filepath.Join(dir, "gone"), "Broken.java", "com.acme.broken", 5),
	}

	rl := domain.NewRunLog()
	out := make(map[domain.InternedString]*domain.Component)
	discovery.Aggregate(scans, false, rl, out)

	require.Len(t, out, 1)
	assert.Contains(t, out, domain.NewInternedString("billing"))

	msgs := rl.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Skipping invalid component com.acme.broken")
}

func TestAggregate_NameCollisionLastWins(t *testing.T) {
	dir := t.TempDir()
	out := make(map[domain.InternedString]*domain.Component)

	// Both packages end in the same segment, so they collapse onto one name.
	discovery.Aggregate([]domain.FileScan{
		fileScan(dir, "A.java", "com.acme.core", 10),
	}, false, domain.NewRunLog(), out)
	discovery.Aggregate([]domain.FileScan{
		fileScan(dir, "B.java", "org.other.core", 20),
	}, false, domain.NewRunLog(), out)

	require.Len(t, out, 1)
	assert.Equal(t, "org.other.core", out[domain.NewInternedString("core")].Package.String())
}
