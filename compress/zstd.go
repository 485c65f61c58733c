package compress

// ZstdCompressor provides Zstandard compression for PRV archives.
//
// Zstd gives the best ratio of the supported algorithms on PRV text, whose
// repeated header and continuation-line structure compresses heavily. Use it
// for archival of large conversion batches or bandwidth-limited transfer.
//
// The implementation is selected at build time: valyala/gozstd (cgo bindings
// to libzstd) when cgo is enabled, the pure-Go klauspost/compress
// implementation otherwise. The produced frames are interchangeable.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
