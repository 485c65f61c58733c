// Package compare implements a deliberately permissive structural check that
// a generated PRV file matches the gross shape of a reference sample.
//
// Files are parsed into tagged records (one header line plus its
// continuation lines) and compared pairwise on continuation-line counts and
// on the presence of date/time tokens near their expected columns. This is
// a similarity heuristic, not a format validator: numeric values are never
// inspected.
package compare

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/arloliu/prvkit/compress"
	"github.com/arloliu/prvkit/errs"
	"github.com/arloliu/prvkit/format"
)

// Expected 1-based columns of the date and time tokens on a record's first
// continuation line.
const (
	dateCol = 7
	timeCol = 18
)

// maxPairs bounds how many record pairs are sampled per comparison.
const maxPairs = 50

// contTolerance is the allowed difference in continuation-line counts
// between paired records.
const contTolerance = 2

// Record is one parsed PRV record: the header line and its continuation
// lines, kept as distinct tagged parts instead of an undifferentiated line
// list.
//
// Header detection is heuristic: a line whose first whitespace-delimited
// token is entirely digits and at least 5 characters long starts a new
// record. Lines preceding the first detected header are grouped into a
// record whose Header slot holds the first such line, matching the line
// counts the legacy checker produced.
type Record struct {
	Header        string
	Continuations []string
}

// ContinuationCount returns the number of continuation lines.
func (r Record) ContinuationCount() int {
	return len(r.Continuations)
}

// Result summarizes one structural comparison.
type Result struct {
	// SampleMedian and GeneratedMedian are the per-file median
	// continuation-line counts, truncated to integers.
	SampleMedian    int
	GeneratedMedian int

	// Checked is the number of record pairs sampled; Passed how many of
	// them satisfied every check.
	Checked int
	Passed  int
}

// OK reports whether every sampled record pair passed.
func (r Result) OK() bool {
	return r.Checked > 0 && r.Passed == r.Checked
}

// ParseRecords reads a PRV-like text stream into tagged records. Empty lines
// are skipped.
func ParseRecords(r io.Reader) ([]Record, error) {
	var (
		recs []Record
		cur  *Record
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		if isHeaderLine(line) {
			if cur != nil {
				recs = append(recs, *cur)
			}
			cur = &Record{Header: line}
			continue
		}

		if cur == nil {
			cur = &Record{Header: line}
			continue
		}
		cur.Continuations = append(cur.Continuations, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}

	if cur != nil {
		recs = append(recs, *cur)
	}

	return recs, nil
}

// ParseFile reads a PRV file into tagged records, transparently
// decompressing by file extension (.zst, .s2, .lz4).
func ParseFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	codec, err := compress.GetCodec(format.CompressionForPath(path))
	if err != nil {
		return nil, err
	}

	text, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}

	return ParseRecords(bytes.NewReader(text))
}

// Check compares generated records against sample records.
//
// Up to the first 50 paired records are checked: continuation-line counts
// must agree within a tolerance of 2, and the generated record's first
// continuation line must show a '-' inside the date column window and a ':'
// inside the time column window.
//
// Returns errs.ErrNoRecords if either input holds no records.
func Check(sample, generated []Record) (Result, error) {
	if len(sample) == 0 || len(generated) == 0 {
		return Result{}, errs.ErrNoRecords
	}

	res := Result{
		SampleMedian:    medianContinuations(sample),
		GeneratedMedian: medianContinuations(generated),
	}

	pairs := min(len(sample), len(generated), maxPairs)
	for i := 0; i < pairs; i++ {
		sr := sample[i]
		gr := generated[i]
		res.Checked++

		ok := true
		if abs(sr.ContinuationCount()-gr.ContinuationCount()) > contTolerance {
			ok = false
		}
		if gr.ContinuationCount() > 0 && !hasDateTimeStamp(gr.Continuations[0]) {
			ok = false
		}
		if ok {
			res.Passed++
		}
	}

	return res, nil
}

// CheckFiles parses both paths and runs Check.
func CheckFiles(samplePath, generatedPath string) (Result, error) {
	sample, err := ParseFile(samplePath)
	if err != nil {
		return Result{}, err
	}

	generated, err := ParseFile(generatedPath)
	if err != nil {
		return Result{}, err
	}

	return Check(sample, generated)
}

// isHeaderLine applies the header-detection heuristic: first character a
// digit, at least one space, and a first token that is all digits and at
// least 5 characters long.
func isHeaderLine(line string) bool {
	if line == "" || !isDigit(line[0]) || !strings.Contains(line, " ") {
		return false
	}

	first := strings.Fields(line)[0]

	return len(first) >= 5 && allDigits(first)
}

// hasDateTimeStamp probes the first continuation line for a '-' in the date
// column window and a ':' in the time column window.
func hasDateTimeStamp(line string) bool {
	if len(line) < dateCol {
		return false
	}

	d := window(line, dateCol-1, dateCol+9)
	t := window(line, timeCol-1, timeCol+8)

	return strings.Contains(d, "-") && strings.Contains(t, ":")
}

// window returns line[start:end] clamped to the line's bounds.
func window(line string, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}

	return line[start:end]
}

func medianContinuations(recs []Record) int {
	counts := make([]float64, 0, len(recs))
	for _, r := range recs {
		counts = append(counts, float64(r.ContinuationCount()))
	}

	med, err := stats.Median(counts)
	if err != nil {
		return 0
	}

	return int(med)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}

	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
