// Package layout describes the data-driven column layout of PRV continuation
// lines.
//
// A Schema carries the fixed line length and an ordered sequence of lines,
// each with an ordered sequence of column spans into which sensor values are
// placed left to right. Schemas are typically loaded from a JSON or YAML
// document via Load; hand-built schemas should be passed through Validate
// before use.
package layout

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/prvkit/errs"
)

// Default values applied to schema documents that omit the fields.
const (
	DefaultLineLength               = 78
	DefaultTypicalContinuationLines = 6
)

// Span is an inclusive 1-based column range within a fixed-width line.
//
// In schema documents a span is written as a two-element array [start, end].
type Span struct {
	Start int
	End   int
}

// Width returns the number of columns the span covers.
func (s Span) Width() int {
	return s.End - s.Start + 1
}

func (s Span) String() string {
	return fmt.Sprintf("(%d,%d)", s.Start, s.End)
}

func (s *Span) fromPair(pair []int) error {
	if len(pair) != 2 {
		return fmt.Errorf("%w: span must be a [start, end] pair, got %d elements", errs.ErrInvalidSpan, len(pair))
	}
	s.Start = pair[0]
	s.End = pair[1]

	return nil
}

// UnmarshalJSON decodes a span from a two-element JSON array.
func (s *Span) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	return s.fromPair(pair)
}

// MarshalJSON encodes a span as a two-element JSON array.
func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{s.Start, s.End})
}

// UnmarshalYAML decodes a span from a two-element YAML sequence.
func (s *Span) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return err
	}

	return s.fromPair(pair)
}

// LineSpec describes one continuation line: the ordered spans where sensor
// values are placed.
type LineSpec struct {
	CommonSpans []Span `json:"common_spans" yaml:"common_spans"`
}

// Schema is the data-driven description of PRV continuation-line layout.
type Schema struct {
	// LineLength is the fixed width of every continuation line before
	// trailing-space trimming.
	LineLength int `json:"line_length" yaml:"line_length"`

	// TypicalContinuationLines is the continuation-line count most records
	// are expected to produce. Informational; it does not drive emission.
	TypicalContinuationLines int `json:"most_common_cont_lines" yaml:"most_common_cont_lines"`

	// Lines is the ordered sequence of continuation-line layouts. Spans are
	// consumed in schema order until the sensors are exhausted; remaining
	// sensors spill into the hard-coded fallback layout.
	Lines []LineSpec `json:"lines" yaml:"lines"`
}

// Default returns the schema used when a layout document defines no lines:
// 78-character lines with the fallback layout carrying all sensors.
func Default() Schema {
	return Schema{
		LineLength:               DefaultLineLength,
		TypicalContinuationLines: DefaultTypicalContinuationLines,
	}
}

func (s *Schema) applyDefaults() {
	if s.LineLength == 0 {
		s.LineLength = DefaultLineLength
	}
	if s.TypicalContinuationLines == 0 {
		s.TypicalContinuationLines = DefaultTypicalContinuationLines
	}
}

// Validate checks the schema's structural invariants:
//
//   - LineLength is positive
//   - every span satisfies 1 <= start <= end <= LineLength
//   - spans within a line are listed left to right and do not overlap
//
// The legacy format left these cases undefined and silently corrupted
// adjacent columns; here they are a defined, descriptive failure.
func (s Schema) Validate() error {
	if s.LineLength <= 0 {
		return fmt.Errorf("%w: line_length %d must be positive", errs.ErrInvalidLayout, s.LineLength)
	}

	for li, line := range s.Lines {
		prevEnd := 0
		for si, span := range line.CommonSpans {
			if span.Start < 1 || span.End < span.Start {
				return fmt.Errorf("%w: line %d span %d %s is inverted or starts before column 1",
					errs.ErrInvalidSpan, li+1, si+1, span)
			}
			if span.End > s.LineLength {
				return fmt.Errorf("%w: line %d span %d %s exceeds line length %d",
					errs.ErrInvalidSpan, li+1, si+1, span, s.LineLength)
			}
			if span.Start <= prevEnd {
				return fmt.Errorf("%w: line %d span %d %s overlaps column %d",
					errs.ErrSpanOverlap, li+1, si+1, span, prevEnd)
			}
			prevEnd = span.End
		}
	}

	return nil
}
