// Package prvkit converts tabular sensor-telemetry records into the legacy
// PRV fixed-column-width text format, and offers a permissive structural
// check that a generated PRV file matches the gross shape of a reference
// sample.
//
// # Basic Usage
//
// Converting a CSV export into a PRV file:
//
//	import "github.com/arloliu/prvkit"
//
//	count, err := prvkit.Convert("input.csv", "output.prv", "layout.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %d records\n", count)
//
// Checking a generated file against a reference sample:
//
//	result, err := prvkit.CompareFiles("sample.prv", "output.prv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.OK() {
//	    fmt.Printf("passed %d/%d sampled records\n", result.Passed, result.Checked)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the lower-level
// packages. For fine-grained control use them directly:
//
//   - prv: record encoder, sequencer, and CSV conversion
//   - layout: continuation-line layout schemas and loading
//   - encoding: the fixed-width numeric formatter and line buffer
//   - compare: the structural comparator
//   - compress: optional whole-file output compression
package prvkit

import (
	"github.com/arloliu/prvkit/compare"
	"github.com/arloliu/prvkit/format"
	"github.com/arloliu/prvkit/internal/hash"
	"github.com/arloliu/prvkit/layout"
	"github.com/arloliu/prvkit/prv"
)

// Convert converts the CSV at csvPath into a plain-text PRV file at outPath
// using the layout schema document at layoutPath.
//
// Returns the number of records written.
//
// Errors:
//   - errs.ErrCSVNotFound if csvPath does not exist
//   - errs.ErrLayoutNotFound if layoutPath does not exist
//   - schema validation and I/O errors otherwise
func Convert(csvPath, outPath, layoutPath string) (int, error) {
	schema, err := layout.Load(layoutPath)
	if err != nil {
		return 0, err
	}

	count, _, err := prv.ConvertFile(csvPath, outPath, schema, format.CompressionNone)

	return count, err
}

// CompareFiles runs the structural comparison between a reference sample PRV
// file and a generated one. Compressed inputs are detected by extension.
func CompareFiles(samplePath, generatedPath string) (compare.Result, error) {
	return compare.CheckFiles(samplePath, generatedPath)
}

// EntityID converts a (program, ptt) entity key to its 64-bit hash
// identifier, the same ID the conversion sequencer groups by.
func EntityID(program, ptt string) uint64 {
	return hash.EntityID(program, ptt)
}
