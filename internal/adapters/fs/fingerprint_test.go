package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/javamap/javamap/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprinter_StableForUnchangedTree(t *testing.T) {
	root := mkTree(t, map[string]string{
		"src/Billing.java":  "package com.acme.billing;",
		"src/Shipping.java": "package com.acme.shipping;",
	})

	fp := fs.NewFingerprinter(fs.NewWalker(nil))

	first, err := fp.Fingerprint(root)
	require.NoError(t, err)
	second, err := fp.Fingerprint(root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestFingerprinter_ChangesOnModTime(t *testing.T) {
	root := mkTree(t, map[string]string{
		"src/Billing.java": "package com.acme.billing;",
	})

	fp := fs.NewFingerprinter(fs.NewWalker(nil))
	before, err := fp.Fingerprint(root)
	require.NoError(t, err)

	stamp := time.Now().Add(2 * time.Hour)
	path := filepath.Join(root, "src", "Billing.java")
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	after, err := fp.Fingerprint(root)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestFingerprinter_ChangesOnAddedFile(t *testing.T) {
	root := mkTree(t, map[string]string{
		"src/Billing.java": "package com.acme.billing;",
	})

	fp := fs.NewFingerprinter(fs.NewWalker(nil))
	before, err := fp.Fingerprint(root)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "Extra.java"), []byte("package com.acme.extra;"), 0o600))

	after, err := fp.Fingerprint(root)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestFingerprinter_IgnoresNonSourceFiles(t *testing.T) {
	root := mkTree(t, map[string]string{
		"src/Billing.java": "package com.acme.billing;",
	})

	fp := fs.NewFingerprinter(fs.NewWalker(nil))
	before, err := fp.Fingerprint(root)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("scratch"), 0o600))

	after, err := fp.Fingerprint(root)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestFingerprinter_DistinctRootsDiffer(t *testing.T) {
	a := mkTree(t, map[string]string{})
	b := mkTree(t, map[string]string{})

	fp := fs.NewFingerprinter(fs.NewWalker(nil))
	fpA, err := fp.Fingerprint(a)
	require.NoError(t, err)
	fpB, err := fp.Fingerprint(b)
	require.NoError(t, err)

	assert.NotEqual(t, fpA, fpB)
}
