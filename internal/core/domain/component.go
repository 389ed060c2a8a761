package domain

import (
	"encoding/binary"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// TestComponentSuffix is appended to the name of components discovered under
// a test source root, so a main and a test component sharing a package get
// distinct names instead of merging.
const TestComponentSuffix = "Test"

// Metadata holds the aggregated per-component counters and flags. Counters
// sum across the component's files; boolean flags OR across them.
type Metadata struct {
	FileCount          int
	TotalLines         int
	HasInterfaces      bool
	HasAbstractClasses bool
	HasTests           bool

	// ContentHash folds the content hashes of the component's files in path
	// order. It changes whenever any file's content changes, giving
	// downstream consumers a cheap per-component change detector.
	ContentHash string
}

// Component is a named group of source files sharing one declared package,
// scoped to either a main or a test source root. Components are immutable
// once built; construct them through a ComponentBuilder.
type Component struct {
	Name         InternedString
	Package      InternedString
	Path         string
	SourceFiles  []string
	Dependencies map[string]struct{}
	IsTest       bool
	Meta         Metadata
}

// NewComponent validates the construction invariants and returns the
// component. Name and package must be non-empty and the path must exist on
// disk at construction time.
func NewComponent(
	name, pkg InternedString,
	path string,
	sourceFiles []string,
	dependencies map[string]struct{},
	isTest bool,
	meta Metadata,
) (*Component, error) {
	if name.String() == "" {
		return nil, zerr.With(ErrInvalidComponent, "reason", "empty component name")
	}
	if pkg.String() == "" {
		return nil, zerr.With(ErrInvalidComponent, "reason", "empty package identifier")
	}
	if _, err := os.Stat(path); err != nil {
		err = zerr.With(ErrInvalidComponent, "reason", "component path does not exist")
		return nil, zerr.With(err, "path", path)
	}
	if dependencies == nil {
		dependencies = make(map[string]struct{})
	}
	return &Component{
		Name:         name,
		Package:      pkg,
		Path:         path,
		SourceFiles:  sourceFiles,
		Dependencies: dependencies,
		IsTest:       isTest,
		Meta:         meta,
	}, nil
}

// DependencyList returns the raw dependency references in sorted order.
func (c *Component) DependencyList() []string {
	deps := make([]string, 0, len(c.Dependencies))
	for dep := range c.Dependencies {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps
}

// ComponentBuilder accumulates the files of one package group and finalizes
// them into an immutable Component. One builder exists per (package,
// source-root-kind) pair during aggregation; it is never shared.
type ComponentBuilder struct {
	pkg    string
	isTest bool
	files  []FileScan
	deps   map[string]struct{}
	meta   Metadata
}

// NewComponentBuilder creates a builder for the given package group.
func NewComponentBuilder(pkg string, isTest bool) *ComponentBuilder {
	return &ComponentBuilder{
		pkg:    pkg,
		isTest: isTest,
		deps:   make(map[string]struct{}),
	}
}

// AddFile folds one scanned file into the group.
func (b *ComponentBuilder) AddFile(scan FileScan) {
	b.files = append(b.files, scan)
	b.meta.FileCount++
	b.meta.TotalLines += scan.Lines
	b.meta.HasInterfaces = b.meta.HasInterfaces || scan.HasInterface
	b.meta.HasAbstractClasses = b.meta.HasAbstractClasses || scan.HasAbstractClass
	b.meta.HasTests = b.meta.HasTests || scan.HasTestMarker
	for _, dep := range scan.Dependencies {
		b.deps[dep] = struct{}{}
	}
}

// Build derives the component name from the package's last dotted segment,
// appends the test suffix for test roots, and validates the result. The
// builder must not be reused after Build.
func (b *ComponentBuilder) Build() (*Component, error) {
	if len(b.files) == 0 {
		return nil, zerr.With(ErrInvalidComponent, "reason", "no source files in package group")
	}

	// Files sort by path so the component's file list and content hash do not
	// depend on walk order.
	sort.Slice(b.files, func(i, j int) bool { return b.files[i].Path < b.files[j].Path })

	segments := strings.Split(b.pkg, ".")
	name := segments[len(segments)-1]
	if b.isTest {
		name += TestComponentSuffix
	}

	sourceFiles := make([]string, len(b.files))
	hasher := xxhash.New()
	for i, scan := range b.files {
		sourceFiles[i] = scan.Path
		_, _ = hasher.WriteString(scan.Path)
		_, _ = hasher.Write([]byte{0})
		_ = binary.Write(hasher, binary.LittleEndian, scan.ContentHash)
	}
	b.meta.ContentHash = fmt.Sprintf("%016x", hasher.Sum64())

	return NewComponent(
		NewInternedString(name),
		NewInternedString(b.pkg),
		b.files[0].Dir,
		sourceFiles,
		b.deps,
		b.isTest,
		b.meta,
	)
}
