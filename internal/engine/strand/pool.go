package strand

import "sync"

// maxPooledBuffer is the largest buffer capacity kept for reuse.
// Larger buffers are left to the garbage collector.
const maxPooledBuffer = 1 << 20

// BufferPool recycles scratch byte buffers used when flattening or
// reversing strands. It uses sync.Pool for thread-safe pooling.
type BufferPool struct {
	pool sync.Pool
}

// DefaultBufferPool is the pool used by strand operations.
var DefaultBufferPool = NewBufferPool()

// NewBufferPool creates a new buffer pool.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				b := make([]byte, 0, 4096)
				return &b
			},
		},
	}
}

// Get returns a buffer of length n. Its contents are unspecified.
// A pooled buffer too small for n is returned to the pool.
func (p *BufferPool) Get(n int) []byte {
	bp := p.pool.Get().(*[]byte)
	b := *bp
	if cap(b) < n {
		p.pool.Put(bp)
		return make([]byte, n)
	}
	return b[:n]
}

// Put returns a buffer to the pool. The buffer must not be used afterwards.
func (p *BufferPool) Put(b []byte) {
	if b == nil || cap(b) > maxPooledBuffer {
		return
	}
	b = b[:0]
	p.pool.Put(&b)
}
