// Package discovery implements the component discovery pipeline: scanning,
// aggregation, dependency resolution and caching.
package discovery

import (
	"github.com/javamap/javamap/internal/core/domain"
)

// Aggregate groups scanned files by their declared package and builds one
// component per group. Files without a package declaration are excluded.
// Groups that fail component validation are reported on the run log and
// skipped; discovery continues with the rest. When two groups derive the
// same component name, the later one wins.
func Aggregate(scans []domain.FileScan, isTest bool, log *domain.RunLog, out map[domain.InternedString]*domain.Component) {
	builders := make(map[string]*domain.ComponentBuilder)
	for _, scan := range scans {
		if scan.Package == "" {
			continue
		}
		builder, ok := builders[scan.Package]
		if !ok {
			builder = domain.NewComponentBuilder(scan.Package, isTest)
			builders[scan.Package] = builder
		}
		builder.AddFile(scan)
	}

	for pkg, builder := range builders {
		component, err := builder.Build()
		if err != nil {
			log.Appendf("Skipping invalid component %s: %v", pkg, err)
			continue
		}
		out[component.Name] = component
	}
}
