package wire

import (
	"math/bits"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
)

const (
	// MinPooledSize is the smallest array the pool hands out. Requests
	// below it are rounded up so tiny buffers still reuse a bucket.
	MinPooledSize = 64

	// MaxPooledSize is the largest array the pool will retain. Rents
	// above it fall through to plain allocation and returns above it
	// are dropped, so one huge message cannot pin memory forever.
	MaxPooledSize = 1 << 20
)

// numClasses covers power-of-two sizes from MinPooledSize to MaxPooledSize.
const numClasses = 15

// Pool is a cache of reusable byte arrays bucketed by power-of-two
// capacity. It is safe for concurrent use; each size class is backed by
// its own sync.Pool. Pass a Pool explicitly to buffer constructors, or
// pass nil to share the process-wide default; tests that care about
// allocation behavior should build their own.
type Pool struct {
	classes [numClasses]sync.Pool

	rents   *xsync.Counter
	returns *xsync.Counter
	misses  *xsync.Counter
}

// PoolStats is a snapshot of a Pool's activity counters.
type PoolStats struct {
	Rents   int64 // arrays handed out, pooled sizes only
	Returns int64 // arrays accepted back
	Misses  int64 // rents served by a fresh allocation
}

// NewPool creates an empty Pool.
func NewPool() *Pool {
	return &Pool{
		rents:   xsync.NewCounter(),
		returns: xsync.NewCounter(),
		misses:  xsync.NewCounter(),
	}
}

var defaultPool = NewPool()

// DefaultPool returns the process-wide pool used when a constructor
// receives a nil *Pool.
func DefaultPool() *Pool { return defaultPool }

// classFor maps a capacity to its size-class index. The capacity must
// already be a power of two within the pooled range.
func classFor(capacity int) int {
	return bits.Len(uint(capacity)) - bits.Len(uint(MinPooledSize))
}

// Get rents an array with capacity at least size. Pooled arrays come
// back with their full bucket capacity as length; callers slice down.
// Sizes above MaxPooledSize are served by plain allocation and will not
// be retained on return.
func (p *Pool) Get(size int) []byte {
	if size > MaxPooledSize {
		p.misses.Inc()
		return make([]byte, size)
	}
	bucket := NextPow2(size)
	if bucket < MinPooledSize {
		bucket = MinPooledSize
	}
	p.rents.Inc()
	if v := p.classes[classFor(bucket)].Get(); v != nil {
		return *(v.(*[]byte))
	}
	p.misses.Inc()
	return make([]byte, bucket)
}

// Put returns an array to its bucket. Arrays whose capacity is not an
// exact pooled bucket size (too small, too large, or not a power of
// two) are dropped on the floor.
func (p *Pool) Put(buf []byte) {
	c := cap(buf)
	if c < MinPooledSize || c > MaxPooledSize || c&(c-1) != 0 {
		return
	}
	buf = buf[:c]
	p.returns.Inc()
	p.classes[classFor(c)].Put(&buf)
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Rents:   p.rents.Value(),
		Returns: p.returns.Value(),
		Misses:  p.misses.Value(),
	}
}
