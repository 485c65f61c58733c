package prv

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/prvkit/encoding"
	"github.com/arloliu/prvkit/errs"
	"github.com/arloliu/prvkit/layout"
)

// Spans of the date, time, and compression-index tokens stamped onto the
// first continuation line of every record.
var (
	dateSpan = layout.Span{Start: 7, End: 16}
	timeSpan = layout.Span{Start: 18, End: 25}
	compSpan = layout.Span{Start: 28, End: 28}
)

// fallbackSpans is the hard-coded continuation-line layout used once the
// schema's lines are exhausted: six sensors per line.
var fallbackSpans = []layout.Span{
	{Start: 7, End: 16},
	{Start: 18, End: 25},
	{Start: 28, End: 36},
	{Start: 37, End: 45},
	{Start: 46, End: 54},
	{Start: 55, End: 63},
}

// Encoder writes PRV records to an output stream, one header line plus
// continuation lines per input row, line at a time and strictly in input
// order.
type Encoder struct {
	w       io.Writer
	schema  layout.Schema
	seq     *Sequencer
	records int
}

// NewEncoder creates an encoder emitting to w with the given layout schema.
//
// The schema is validated up front, including that the stamp columns and, if
// the schema cannot hold all 22 sensors, the fallback spans fit within the
// schema's line length. The legacy tool silently corrupted output in those
// cases; here they fail fast.
func NewEncoder(w io.Writer, schema layout.Schema) (*Encoder, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	if schema.LineLength < compSpan.End {
		return nil, fmt.Errorf("%w: line length %d cannot hold the date/time stamp columns (end %d)",
			errs.ErrInvalidSpan, schema.LineLength, compSpan.End)
	}

	if schemaCapacity(schema) < SensorCount {
		last := fallbackSpans[len(fallbackSpans)-1]
		if schema.LineLength < last.End {
			return nil, fmt.Errorf("%w: line length %d cannot hold the fallback spans (end %d)",
				errs.ErrInvalidSpan, schema.LineLength, last.End)
		}
	}

	return &Encoder{
		w:      w,
		schema: schema,
		seq:    NewSequencer(),
	}, nil
}

// schemaCapacity returns the number of sensor values the schema's lines can
// hold before the fallback layout takes over.
func schemaCapacity(schema layout.Schema) int {
	capacity := 0
	for _, line := range schema.Lines {
		capacity += len(line.CommonSpans)
	}

	return capacity
}

// Sequencer exposes the per-run sequencing state, mainly for inspection in
// tests and summaries.
func (e *Encoder) Sequencer() *Sequencer {
	return e.seq
}

// Records returns the number of records written so far.
func (e *Encoder) Records() int {
	return e.records
}

// WriteRecord encodes one input row: the header line followed by every
// continuation line, schema-driven first, fallback once the schema is
// exhausted.
//
// Value-level problems (blank sensors, malformed timestamps) degrade to the
// documented fallback literals and never fail the row; the only errors
// returned are writer errors.
func (e *Encoder) WriteRecord(rec Record) error {
	index := e.seq.Next(strings.TrimSpace(rec.Program), strings.TrimSpace(rec.PTT))

	if err := e.writeLine(rec.headerLine(index)); err != nil {
		return err
	}

	date, clock := normalizeTimestamp(rec.MessageDate)
	comp := rec.CompressionIndex
	if comp == "" {
		comp = "1"
	}

	placed := 0
	stamped := false

	// Schema-driven phase: consume schema lines in order while sensors
	// remain, stamping date/time/compression onto the first line.
	for li := 0; li < len(e.schema.Lines) && placed < SensorCount; li++ {
		buf := encoding.NewLineBuffer(e.schema.LineLength)
		if !stamped {
			e.stamp(buf, date, clock, comp)
			stamped = true
		}

		for _, span := range e.schema.Lines[li].CommonSpans {
			if placed >= SensorCount {
				break
			}
			buf.Place(span.Start, span.End, encoding.FormatExpField(rec.Sensors[placed], span.Width()))
			placed++
		}

		err := e.writeLine(buf.String())
		buf.Release()
		if err != nil {
			return err
		}
	}

	// Fallback phase. The stamp is never repeated; when the schema defined
	// no lines at all, the record's first continuation line carries only the
	// stamp and sensors start on the next line, keeping the stamp columns
	// clear of the overlapping fallback spans.
	for placed < SensorCount || !stamped {
		buf := encoding.NewLineBuffer(e.schema.LineLength)
		if !stamped {
			e.stamp(buf, date, clock, comp)
			stamped = true
		} else {
			for _, span := range fallbackSpans {
				if placed >= SensorCount {
					break
				}
				buf.Place(span.Start, span.End, encoding.FormatExpField(rec.Sensors[placed], span.Width()))
				placed++
			}
		}

		err := e.writeLine(buf.String())
		buf.Release()
		if err != nil {
			return err
		}
	}

	e.records++

	return nil
}

func (e *Encoder) stamp(buf *encoding.LineBuffer, date, clock, comp string) {
	buf.Place(dateSpan.Start, dateSpan.End, date)
	buf.Place(timeSpan.Start, timeSpan.End, clock)
	buf.Place(compSpan.Start, compSpan.End, comp)
}

func (e *Encoder) writeLine(line string) error {
	if _, err := io.WriteString(e.w, line); err != nil {
		return fmt.Errorf("write output line: %w", err)
	}
	if _, err := io.WriteString(e.w, "\n"); err != nil {
		return fmt.Errorf("write output line: %w", err)
	}

	return nil
}
