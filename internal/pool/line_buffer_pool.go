package pool

import "sync"

// LineBufferDefaultSize covers the default 78-column PRV line with headroom.
const (
	LineBufferDefaultSize  = 128
	LineBufferMaxThreshold = 4096
)

// LineBufferPool is a pool of byte slices backing fixed-width output lines.
//
// It uses sync.Pool internally. The pool can be configured with a maximum
// capacity threshold to avoid retaining overly large buffers that could lead
// to memory bloat.
type LineBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewLineBufferPool creates a new LineBufferPool whose buffers start at the
// specified default capacity.
func NewLineBufferPool(defaultSize int, maxThreshold int) *LineBufferPool {
	return &LineBufferPool{
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, 0, defaultSize)
				return &buf
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a buffer of exactly length bytes, every byte set to a space.
func (p *LineBufferPool) Get(length int) []byte {
	ptr, _ := p.pool.Get().(*[]byte)
	buf := *ptr
	if cap(buf) < length {
		buf = make([]byte, length)
	} else {
		buf = buf[:length]
	}
	for i := range buf {
		buf[i] = ' '
	}

	return buf
}

// Put returns a buffer to the pool for reuse.
func (p *LineBufferPool) Put(buf []byte) {
	if buf == nil {
		return
	}

	if p.maxThreshold > 0 && cap(buf) > p.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	buf = buf[:0]
	p.pool.Put(&buf)
}

var defaultLinePool = NewLineBufferPool(LineBufferDefaultSize, LineBufferMaxThreshold)

// GetLineBuffer retrieves a space-filled buffer from the default line pool.
func GetLineBuffer(length int) []byte {
	return defaultLinePool.Get(length)
}

// PutLineBuffer returns a buffer to the default line pool.
func PutLineBuffer(buf []byte) {
	defaultLinePool.Put(buf)
}
