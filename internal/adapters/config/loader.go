// Package config provides the configuration loader for javamap.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/javamap/javamap/internal/core/domain"
	"github.com/javamap/javamap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "javamap.yaml"

var _ ports.ConfigLoader = (*FileLoader)(nil)

// FileLoader implements ports.ConfigLoader using a YAML file. A missing file
// is not an error; defaults apply and unset keys fall back per key.
type FileLoader struct {
	Filename string
	log      ports.Logger
}

// NewLoader returns a loader reading DefaultFilename.
func NewLoader(log ports.Logger) *FileLoader {
	return &FileLoader{Filename: DefaultFilename, log: log}
}

// Mapfile represents the structure of the javamap.yaml configuration file.
type Mapfile struct {
	CacheDir   string   `yaml:"cacheDir"`
	MaxCacheMB *int     `yaml:"maxCacheMB"`
	MainRoot   string   `yaml:"mainRoot"`
	TestRoot   string   `yaml:"testRoot"`
	Ignores    []string `yaml:"ignores"`
}

// Load reads the configuration from the given working directory and merges
// it over the defaults.
func (l *FileLoader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var mapfile Mapfile
	if err := yaml.Unmarshal(data, &mapfile); err != nil {
		return settings, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if mapfile.CacheDir != "" {
		settings.CacheDir = mapfile.CacheDir
	}
	if mapfile.MaxCacheMB != nil {
		if *mapfile.MaxCacheMB <= 0 {
			return settings, zerr.With(zerr.New("maxCacheMB must be positive"), "maxCacheMB", *mapfile.MaxCacheMB)
		}
		settings.MaxCacheMB = *mapfile.MaxCacheMB
	}
	if mapfile.MainRoot != "" {
		settings.MainRoot = mapfile.MainRoot
	}
	if mapfile.TestRoot != "" {
		settings.TestRoot = mapfile.TestRoot
	}
	if len(mapfile.Ignores) > 0 {
		settings.Ignores = mapfile.Ignores
	}

	l.log.Info("loaded configuration from " + path)
	return settings, nil
}
