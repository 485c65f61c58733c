// Package encoding implements the low-level text encoders for the PRV
// fixed-column-width record format.
//
// Two primitives live here:
//
//   - FormatExpField renders a numeric sensor value into the condensed
//     fixed-width scientific notation PRV consumers expect.
//   - LineBuffer is a fixed-length, space-filled line into which tokens are
//     placed at 1-based inclusive column spans.
//
// Both are deliberately lossy: tokens wider than their target span are
// truncated rather than rejected, matching the legacy format's permissive
// value handling. Structural problems (spans outside the line) are the
// caller's contract to rule out up front; see the layout package.
package encoding
