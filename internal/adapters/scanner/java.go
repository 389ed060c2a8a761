// Package scanner implements source-file scanning for Java trees.
package scanner

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/javamap/javamap/internal/adapters/fs"
	"github.com/javamap/javamap/internal/core/domain"
	"github.com/javamap/javamap/internal/core/ports"
)

var _ ports.SourceScanner = (*JavaScanner)(nil)

var (
	rePackage  = regexp.MustCompile(`package\s+([\w.]+)\s*;`)
	reImport   = regexp.MustCompile(`import\s+(?:static\s+)?([\w.]+)(?:\s*\*)?\s*;`)
	reIface    = regexp.MustCompile(`\binterface\s+\w+`)
	reAbstract = regexp.MustCompile(`\babstract\s+class\s+\w+`)

	// Deliberately loose: any test annotation or test-ish token flags the
	// file. Aggregation ORs the flag across a component's files, so false
	// positives only ever widen the "has tests" signal.
	reTestMarker = regexp.MustCompile(`@Test\b|Test\w+\.java$|test|Test`)
)

// JavaScanner implements ports.SourceScanner for .java files.
type JavaScanner struct {
	walker *fs.Walker
}

// NewJavaScanner creates a scanner backed by the given walker.
func NewJavaScanner(walker *fs.Walker) *JavaScanner {
	return &JavaScanner{walker: walker}
}

// Scan reads every .java file under root and extracts its package identity,
// dependency references and metadata flags. Files that fail to decode as
// text, or fail to read at all, are reported on the run log and skipped;
// one broken file must not abort discovery of the rest of the tree.
func (s *JavaScanner) Scan(root string, log *domain.RunLog) ([]domain.FileScan, error) {
	var scans []domain.FileScan

	for path := range s.walker.SourceFiles(root, fs.JavaExt) {
		content, err := os.ReadFile(path) //nolint:gosec // Paths come from the walked tree
		if err != nil {
			log.Appendf("Error reading %s: %v", filepath.Base(path), err)
			continue
		}
		if !utf8.Valid(content) {
			log.Appendf("Skipping binary file: %s", filepath.Base(path))
			continue
		}
		scans = append(scans, scanFile(path, string(content)))
	}

	return scans, nil
}

// scanFile extracts the per-file record from decoded content.
func scanFile(path, content string) domain.FileScan {
	scan := domain.FileScan{
		Path:             path,
		Dir:              filepath.Dir(path),
		Package:          extractPackage(content),
		Dependencies:     findDependencies(content),
		Lines:            lineCount(content),
		HasInterface:     reIface.MatchString(content),
		HasAbstractClass: reAbstract.MatchString(content),
		HasTestMarker:    reTestMarker.MatchString(content),
		ContentHash:      xxhash.Sum64String(content),
	}
	return scan
}

// extractPackage returns the first declared package identifier, or "" when
// the file has none (such files are excluded from aggregation).
func extractPackage(content string) string {
	match := rePackage.FindStringSubmatch(content)
	if match == nil {
		return ""
	}
	return match[1]
}

// findDependencies collects the containing package of every import, not the
// imported type itself: the last dotted segment is dropped so dependencies
// aggregate at package granularity. Single-segment imports carry no package
// and are ignored.
func findDependencies(content string) []string {
	set := make(map[string]struct{})
	for _, match := range reImport.FindAllStringSubmatch(content, -1) {
		parts := strings.Split(match[1], ".")
		if len(parts) < 2 {
			continue
		}
		set[strings.Join(parts[:len(parts)-1], ".")] = struct{}{}
	}

	deps := make([]string, 0, len(set))
	for dep := range set {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps
}

func lineCount(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + boolToInt(!strings.HasSuffix(content, "\n"))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
