// Package app implements the application layer for javamap.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/javamap/javamap/internal/core/domain"
	"github.com/javamap/javamap/internal/core/ports"
	"github.com/javamap/javamap/internal/engine/discovery"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	orchestrator *discovery.Orchestrator
	log          ports.Logger
	out          io.Writer
}

// New creates a new App instance writing its report to stdout.
func New(orchestrator *discovery.Orchestrator, log ports.Logger) *App {
	return &App{
		orchestrator: orchestrator,
		log:          log,
		out:          os.Stdout,
	}
}

// SetOutput redirects the report writer. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// RunOptions controls the output of a discovery run.
type RunOptions struct {
	// JSON emits the machine-readable report instead of the text summary.
	JSON bool
}

// Run discovers the components of the tree at root and writes the report.
// Run log messages are emitted through the logger even when discovery fails,
// so partial progress stays visible.
func (a *App) Run(ctx context.Context, root string, opts RunOptions) error {
	rl := &domain.RunLog{}
	result, err := a.orchestrator.Discover(ctx, root, rl)
	for _, msg := range rl.Messages() {
		a.log.Info(msg)
	}
	if err != nil {
		return err
	}

	if opts.JSON {
		return a.writeJSON(result)
	}
	return a.writeSummary(result)
}

func (a *App) writeSummary(result *domain.DiscoveryResult) error {
	for name := range result.Graph.Nodes() {
		component, err := result.Component(name)
		if err != nil {
			continue
		}
		kind := "main"
		if component.IsTest {
			kind = "test"
		}
		_, err = fmt.Fprintf(a.out, "%-40s %-6s files=%-4d lines=%-6d deps=%d\n",
			component.Name.String(),
			kind,
			component.Meta.FileCount,
			component.Meta.TotalLines,
			len(result.Graph.Dependencies(name)),
		)
		if err != nil {
			return zerr.Wrap(err, "failed to write summary")
		}
	}

	_, err := fmt.Fprintf(a.out, "%d components, %d dependencies\n",
		result.Graph.NodeCount(), result.Graph.EdgeCount())
	if err != nil {
		return zerr.Wrap(err, "failed to write summary")
	}
	return nil
}

// jsonReport is the machine-readable discovery report.
type jsonReport struct {
	Components []jsonComponent `json:"components"`
	Edges      [][2]string     `json:"edges"`
	HasCycles  bool            `json:"has_cycles"`
}

type jsonComponent struct {
	Name               string   `json:"name"`
	Package            string   `json:"package"`
	Path               string   `json:"path"`
	SourceFiles        []string `json:"source_files"`
	IsTest             bool     `json:"is_test"`
	FileCount          int      `json:"file_count"`
	TotalLines         int      `json:"total_lines"`
	HasInterfaces      bool     `json:"has_interfaces"`
	HasAbstractClasses bool     `json:"has_abstract_classes"`
	HasTests           bool     `json:"has_tests"`
	ContentHash        string   `json:"content_hash"`
}

func (a *App) writeJSON(result *domain.DiscoveryResult) error {
	report := jsonReport{
		Components: make([]jsonComponent, 0, len(result.Components)),
		Edges:      make([][2]string, 0, result.Graph.EdgeCount()),
		HasCycles:  result.Graph.HasCycles(),
	}

	for name := range result.Graph.Nodes() {
		component, err := result.Component(name)
		if err != nil {
			continue
		}
		report.Components = append(report.Components, jsonComponent{
			Name:               component.Name.String(),
			Package:            component.Package.String(),
			Path:               component.Path,
			SourceFiles:        component.SourceFiles,
			IsTest:             component.IsTest,
			FileCount:          component.Meta.FileCount,
			TotalLines:         component.Meta.TotalLines,
			HasInterfaces:      component.Meta.HasInterfaces,
			HasAbstractClasses: component.Meta.HasAbstractClasses,
			HasTests:           component.Meta.HasTests,
			ContentHash:        component.Meta.ContentHash,
		})
	}
	for from, to := range result.Graph.Edges() {
		report.Edges = append(report.Edges, [2]string{from.String(), to.String()})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal report")
	}
	data = append(data, '\n')
	if _, err := a.out.Write(data); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	return nil
}
