// Package compress provides whole-file compression codecs for generated PRV
// archives.
//
// PRV output is plain line-oriented text; batches of records compress
// extremely well because headers and continuation lines repeat the same
// column structure. The converter can optionally run its finished output
// through one of these codecs, and the structural comparator transparently
// decompresses inputs by file extension.
//
// Supported algorithms:
//   - None: plain text, the legacy default
//   - Zstd: best ratio, for archival of large conversion batches
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// Two Zstd implementations are provided behind build tags: valyala/gozstd
// when cgo is available, and the pure-Go klauspost/compress implementation
// otherwise. Both produce interchangeable Zstandard frames.
package compress
