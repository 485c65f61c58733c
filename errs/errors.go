// Package errs defines the sentinel errors shared across prvkit packages.
//
// Callers are expected to match these with errors.Is after unwrapping;
// packages wrap them with fmt.Errorf("...: %w", ...) to add context such as
// file paths or span coordinates.
package errs

import "errors"

var (
	// ErrCSVNotFound indicates the input CSV file does not exist.
	ErrCSVNotFound = errors.New("csv file not found")

	// ErrLayoutNotFound indicates the layout schema file does not exist.
	ErrLayoutNotFound = errors.New("layout schema not found")

	// ErrInvalidLayout indicates a layout schema document that could not be
	// decoded into a schema.
	ErrInvalidLayout = errors.New("invalid layout schema")

	// ErrInvalidSpan indicates a column span that is inverted, starts before
	// column 1, or extends past the schema line length.
	ErrInvalidSpan = errors.New("invalid layout span")

	// ErrSpanOverlap indicates two spans on the same layout line that share
	// columns.
	ErrSpanOverlap = errors.New("overlapping layout spans")

	// ErrNoRecords indicates a comparison input with no parseable records.
	ErrNoRecords = errors.New("no records to compare")

	// ErrInvalidCompression indicates an unknown compression algorithm name
	// or type.
	ErrInvalidCompression = errors.New("invalid compression type")
)
