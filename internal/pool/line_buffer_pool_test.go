package pool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineBufferPool_GetReturnsSpaces(t *testing.T) {
	p := NewLineBufferPool(LineBufferDefaultSize, LineBufferMaxThreshold)

	buf := p.Get(78)
	require.Len(t, buf, 78)
	require.Equal(t, strings.Repeat(" ", 78), string(buf))
}

func TestLineBufferPool_RecycledBufferIsClean(t *testing.T) {
	p := NewLineBufferPool(LineBufferDefaultSize, LineBufferMaxThreshold)

	buf := p.Get(16)
	for i := range buf {
		buf[i] = 'x'
	}
	p.Put(buf)

	next := p.Get(16)
	require.Equal(t, strings.Repeat(" ", 16), string(next))
}

func TestLineBufferPool_GrowsPastDefaultSize(t *testing.T) {
	p := NewLineBufferPool(8, 0)

	buf := p.Get(200)
	require.Len(t, buf, 200)
	require.Equal(t, strings.Repeat(" ", 200), string(buf))
}

func TestLineBufferPool_DiscardsOversizeBuffers(t *testing.T) {
	p := NewLineBufferPool(8, 16)

	// Put must not panic or retain buffers above the threshold; either way
	// a follow-up Get stays correct.
	p.Put(make([]byte, 0, 64))
	p.Put(nil)

	buf := p.Get(8)
	require.Len(t, buf, 8)
	require.Equal(t, strings.Repeat(" ", 8), string(buf))
}

func TestDefaultLinePool(t *testing.T) {
	buf := GetLineBuffer(78)
	require.Len(t, buf, 78)
	PutLineBuffer(buf)

	next := GetLineBuffer(32)
	require.Equal(t, strings.Repeat(" ", 32), string(next))
	PutLineBuffer(next)
}
