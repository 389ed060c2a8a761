// Package ports defines the core interfaces for the application.
package ports

import "github.com/javamap/javamap/internal/core/domain"

// SourceScanner walks one source root and extracts per-file metadata.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type SourceScanner interface {
	// Scan reads every source file under root and returns one FileScan per
	// decodable file. Files that fail to decode as text are skipped and
	// reported on the run log, not as errors; only I/O failures that abort
	// the walk itself surface as an error.
	Scan(root string, log *domain.RunLog) ([]domain.FileScan, error)
}
