package domain

// FileScan carries the metadata extracted from a single source file. It is
// the record handed from the scanner to the aggregator; fields are populated
// by the scanner and never mutated afterwards.
type FileScan struct {
	// Path is the absolute path of the scanned file.
	Path string

	// Dir is the directory containing the file.
	Dir string

	// Package is the declared package identifier. Empty when the file has no
	// package declaration; such files are excluded from aggregation.
	Package string

	// Dependencies holds the raw package-level dependency references found in
	// import statements, deduplicated and sorted. Each entry is the import's
	// identifier with its last segment removed, so dependencies aggregate at
	// package rather than class granularity.
	Dependencies []string

	// Lines is the number of lines in the file.
	Lines int

	// HasInterface reports whether the file declares an interface.
	HasInterface bool

	// HasAbstractClass reports whether the file declares an abstract class.
	HasAbstractClass bool

	// HasTestMarker reports whether the file carries a test annotation or
	// test naming convention.
	HasTestMarker bool

	// ContentHash is the xxhash of the file's content.
	ContentHash uint64
}
