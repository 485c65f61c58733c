package compress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/prvkit/errs"
	"github.com/arloliu/prvkit/format"
)

// prvPayload is a representative chunk of PRV text: highly repetitive, so
// every real algorithm should shrink it.
func prvPayload() []byte {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("00123 000045  001 22 A\n")
		sb.WriteString("      2020-02-01 13:05:00  2\n")
		sb.WriteString("       .00000E+0 00000E+0  .00000E+0.00000E+0.00000E+0.00000E+0\n")
	}

	return []byte(sb.String())
}

func TestCodecRoundTrip(t *testing.T) {
	payload := prvPayload()

	for _, typ := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, restored))

			if typ != format.CompressionNone {
				require.Less(t, len(compressed), len(payload))
			}
		})
	}
}

func TestCodecRoundTrip_Empty(t *testing.T) {
	for _, typ := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xEE))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestNoOpPassthrough(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := prvPayload()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)
}

func TestDecompress_Corrupted(t *testing.T) {
	garbage := []byte("definitely not a compressed frame")

	for _, typ := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionLZ4,
	} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestStats(t *testing.T) {
	st := Stats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 250}
	require.InDelta(t, 0.25, st.Ratio(), 1e-9)
	require.InDelta(t, 75.0, st.SpaceSavings(), 1e-9)

	empty := Stats{}
	require.Equal(t, 0.0, empty.Ratio())
}
