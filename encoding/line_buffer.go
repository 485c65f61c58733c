package encoding

import (
	"strings"

	"github.com/arloliu/prvkit/internal/pool"
)

// LineBuffer is a mutable fixed-length line of space characters into which
// text tokens are placed at 1-based inclusive column spans.
//
// The backing storage comes from a pool; call Release when the line has been
// serialized so the buffer can be reused. A LineBuffer must not be used
// after Release.
type LineBuffer struct {
	buf []byte
}

// NewLineBuffer creates a line buffer of the given length, filled with
// spaces.
func NewLineBuffer(length int) *LineBuffer {
	return &LineBuffer{buf: pool.GetLineBuffer(length)}
}

// Len returns the fixed line length.
func (b *LineBuffer) Len() int {
	return len(b.buf)
}

// Place writes text into the inclusive 1-based column span [start, end].
//
// Text longer than the span width is truncated to its first width
// characters; shorter text is right-justified with leading spaces. Bytes
// outside the span are untouched.
//
// The span is assumed to lie within the line: 1 <= start <= end <= Len().
// Spans are validated when a layout schema is loaded, not here.
func (b *LineBuffer) Place(start, end int, text string) {
	width := end - start + 1
	if len(text) > width {
		text = text[:width]
	}

	pad := width - len(text)
	for i := 0; i < pad; i++ {
		b.buf[start-1+i] = ' '
	}
	copy(b.buf[start-1+pad:end], text)
}

// String serializes the line with trailing spaces removed.
func (b *LineBuffer) String() string {
	return strings.TrimRight(string(b.buf), " ")
}

// Release returns the backing buffer to the pool. The LineBuffer must not be
// used afterwards.
func (b *LineBuffer) Release() {
	pool.PutLineBuffer(b.buf)
	b.buf = nil
}
