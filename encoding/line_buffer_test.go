package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineBuffer_EmptySerializesEmpty(t *testing.T) {
	buf := NewLineBuffer(10)
	defer buf.Release()

	require.Equal(t, 10, buf.Len())
	require.Equal(t, "", buf.String())
}

func TestLineBuffer_PlaceRightJustifies(t *testing.T) {
	buf := NewLineBuffer(10)
	defer buf.Release()

	buf.Place(3, 5, "ab")
	require.Equal(t, "   ab", buf.String())
}

func TestLineBuffer_PlaceTruncatesToSpanWidth(t *testing.T) {
	buf := NewLineBuffer(10)
	defer buf.Release()

	buf.Place(1, 3, "abcdef")
	require.Equal(t, "abc", buf.String())
}

func TestLineBuffer_PlaceLeavesOutsideUntouched(t *testing.T) {
	buf := NewLineBuffer(10)
	defer buf.Release()

	buf.Place(1, 10, "0123456789")
	buf.Place(3, 5, "xy")

	require.Equal(t, 10, buf.Len())
	require.Equal(t, "01 xy56789", buf.String())
}

func TestLineBuffer_PlaceFullSpanOverwrite(t *testing.T) {
	buf := NewLineBuffer(8)
	defer buf.Release()

	buf.Place(1, 8, "aaaaaaaa")
	buf.Place(1, 8, "bb")
	require.Equal(t, "      bb", buf.String())
}

func TestLineBuffer_TrailingSpacesTrimmed(t *testing.T) {
	buf := NewLineBuffer(78)
	defer buf.Release()

	buf.Place(7, 16, "2020-02-01")
	require.Equal(t, "      2020-02-01", buf.String())
}

func TestLineBuffer_ReuseAfterRelease(t *testing.T) {
	buf := NewLineBuffer(12)
	buf.Place(1, 12, "xxxxxxxxxxxx")
	buf.Release()

	// A fresh buffer must come back space-filled even when the pool hands
	// out recycled storage.
	next := NewLineBuffer(12)
	defer next.Release()
	require.Equal(t, "", next.String())
	require.Equal(t, 12, next.Len())
}
