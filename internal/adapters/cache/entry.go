package cache

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/javamap/javamap/internal/core/domain"
	"go.trai.ch/zerr"
)

// entry is the persisted form of one discovery result. Components and Edges
// are pointers so a file missing either key is distinguishable from one
// carrying an empty list: a missing key means the file is structurally
// unreadable, not merely stale.
type entry struct {
	Version    string             `json:"version"`
	Timestamp  time.Time          `json:"timestamp"`
	Components *[]componentRecord `json:"components"`
	Edges      *[][2]string       `json:"edges"`
}

type componentRecord struct {
	Name         string         `json:"name"`
	Package      string         `json:"package"`
	Path         string         `json:"path"`
	SourceFiles  []string       `json:"source_files"`
	Dependencies []string       `json:"dependencies"`
	IsTest       bool           `json:"is_test"`
	Metadata     metadataRecord `json:"metadata"`
}

type metadataRecord struct {
	FileCount          int    `json:"file_count"`
	TotalLines         int    `json:"total_lines"`
	HasInterfaces      bool   `json:"has_interfaces"`
	HasAbstractClasses bool   `json:"has_abstract_classes"`
	HasTests           bool   `json:"has_tests"`
	ContentHash        string `json:"content_hash"`
}

// encode serializes the result with components sorted by name and edges in
// sorted pair order, so identical results always produce identical bytes.
func encode(result *domain.DiscoveryResult) ([]byte, error) {
	return encodeAt(result, time.Now().UTC())
}

// encodeAt is encode with an explicit generation timestamp.
func encodeAt(result *domain.DiscoveryResult, ts time.Time) ([]byte, error) {
	records := make([]componentRecord, 0, len(result.Components))
	for _, name := range sortedNames(result.Components) {
		c := result.Components[name]
		records = append(records, componentRecord{
			Name:         c.Name.String(),
			Package:      c.Package.String(),
			Path:         c.Path,
			SourceFiles:  c.SourceFiles,
			Dependencies: c.DependencyList(),
			IsTest:       c.IsTest,
			Metadata: metadataRecord{
				FileCount:          c.Meta.FileCount,
				TotalLines:         c.Meta.TotalLines,
				HasInterfaces:      c.Meta.HasInterfaces,
				HasAbstractClasses: c.Meta.HasAbstractClasses,
				HasTests:           c.Meta.HasTests,
				ContentHash:        c.Meta.ContentHash,
			},
		})
	}

	edges := make([][2]string, 0, result.Graph.EdgeCount())
	for from, to := range result.Graph.Edges() {
		edges = append(edges, [2]string{from.String(), to.String()})
	}

	e := entry{
		Version:    schemaVersion,
		Timestamp:  ts,
		Components: &records,
		Edges:      &edges,
	}

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal cache entry")
	}
	return data, nil
}

// decode reconstructs a result from entry bytes. The version check runs
// before any shape check, so an entry written under another schema is a
// plain miss no matter what it contains. Within the current version, an
// unparseable or key-missing file is the cache-error category; any invalid
// component/edge record invalidates the whole entry into (nil, false, nil),
// since partial reconstruction is disallowed; otherwise the full result is
// returned.
func (s *Store) decode(data []byte) (*domain.DiscoveryResult, bool, error) {
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false, zerr.Wrap(domain.ErrCacheCorrupt, err.Error())
	}
	if e.Version != schemaVersion {
		return nil, false, nil
	}
	if e.Components == nil || e.Edges == nil {
		return nil, false, zerr.With(domain.ErrCacheCorrupt, "reason", "missing components or edges key")
	}

	components := make(map[domain.InternedString]*domain.Component, len(*e.Components))
	for _, record := range *e.Components {
		deps := make(map[string]struct{}, len(record.Dependencies))
		for _, dep := range record.Dependencies {
			deps[dep] = struct{}{}
		}
		c, err := domain.NewComponent(
			domain.NewInternedString(record.Name),
			domain.NewInternedString(record.Package),
			record.Path,
			record.SourceFiles,
			deps,
			record.IsTest,
			domain.Metadata{
				FileCount:          record.Metadata.FileCount,
				TotalLines:         record.Metadata.TotalLines,
				HasInterfaces:      record.Metadata.HasInterfaces,
				HasAbstractClasses: record.Metadata.HasAbstractClasses,
				HasTests:           record.Metadata.HasTests,
				ContentHash:        record.Metadata.ContentHash,
			},
		)
		if err != nil {
			s.log.Warn("invalid component in cache entry: " + err.Error())
			return nil, false, nil
		}
		components[c.Name] = c
	}

	graph := domain.NewDependencyGraph()
	for name := range components {
		graph.AddNode(name)
	}
	for _, edge := range *e.Edges {
		if edge[0] == "" || edge[1] == "" {
			s.log.Warn("invalid edge in cache entry")
			return nil, false, nil
		}
		graph.AddEdge(domain.NewInternedString(edge[0]), domain.NewInternedString(edge[1]))
	}

	return &domain.DiscoveryResult{Components: components, Graph: graph}, true, nil
}

func sortedNames(components map[domain.InternedString]*domain.Component) []domain.InternedString {
	names := make([]domain.InternedString, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	slices.SortFunc(names, domain.InternedString.Compare)
	return names
}
