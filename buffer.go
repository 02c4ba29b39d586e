package wire

import (
	"encoding/binary"
	"io"
	"math"
)

// MaxBufferSize is the hard ceiling on an owned buffer's capacity.
// Growth past it fails with ErrBufferLimit.
const MaxBufferSize = 1 << 28

// Buffer is a single linear byte region with a read/write cursor.
//
// An owned buffer rents its backing array from a Pool and grows
// geometrically (next power of two) as writes demand. A borrowed buffer
// wraps caller memory, typically bytes just received from a transport,
// and never reallocates; writing past its capacity fails. The same type
// therefore serves as the write-side scratch buffer and as the
// zero-copy read-side view.
//
// Buffer tracks the first error encountered; once set, every subsequent
// operation becomes a no-op and reads leave their destination
// unchanged. Check Err after a batch of operations instead of after
// each one. A Buffer is not safe for concurrent use.
type Buffer struct {
	data  []byte // backing region, sliced to its full capacity
	len   int    // committed bytes
	pos   int    // read/write cursor
	owned bool
	pool  *Pool
	gen   uint64 // bumped on reallocation, invalidates outstanding Ranges
	err   error  // first error encountered
}

// byteOrder for all fixed-width numerics: little-endian, matching the
// bit order of the varint encoding.
var byteOrder = binary.LittleEndian

// NewBuffer creates an empty owned buffer backed by pool.
// A nil pool selects the process-wide default.
func NewBuffer(pool *Pool) *Buffer {
	if pool == nil {
		pool = defaultPool
	}
	return &Buffer{owned: true, pool: pool}
}

// NewBufferSize creates an empty owned buffer with capacity for at
// least capacity bytes already rented.
func NewBufferSize(pool *Pool, capacity int) *Buffer {
	b := NewBuffer(pool)
	if capacity > 0 {
		b.setError(b.ensure(capacity))
	}
	return b
}

// NewBufferFrom creates an owned buffer initialized with a copy of
// data. The caller's slice is never aliased for writing.
func NewBufferFrom(pool *Pool, data []byte) *Buffer {
	b := NewBufferSize(pool, len(data))
	if b.err == nil {
		copy(b.data, data)
		b.len = len(data)
	}
	return b
}

// View creates a borrowed buffer over data with length = len(data) and
// the cursor at 0. The buffer aliases data; it can be read, and written
// within cap(data), but never grows. This is the zero-copy read path
// for received bytes.
func View(data []byte) *Buffer {
	return &Buffer{data: data[:len(data)], len: len(data)}
}

// Own creates an owned buffer that takes ownership of data, with the
// committed length set to length. data must not be used by the caller
// afterwards; Release will hand it to the pool.
func Own(pool *Pool, data []byte, length int) *Buffer {
	if pool == nil {
		pool = defaultPool
	}
	b := &Buffer{data: data[:cap(data)], owned: true, pool: pool}
	if length < 0 || length > cap(data) {
		b.setError(ErrInvalidPosition)
		return b
	}
	b.len = length
	return b
}

// Len returns the number of committed bytes.
func (b *Buffer) Len() int { return b.len }

// Cap returns the current capacity of the backing region.
func (b *Buffer) Cap() int { return len(b.data) }

// Position returns the cursor.
func (b *Buffer) Position() int { return b.pos }

// Available returns the committed bytes remaining after the cursor.
func (b *Buffer) Available() int { return b.len - b.pos }

// Owned reports whether the buffer owns its backing array.
func (b *Buffer) Owned() bool { return b.owned }

// Err returns the first error encountered, or nil.
func (b *Buffer) Err() error { return b.err }

// Bytes returns the committed [0, Len) region. The slice aliases the
// backing array and is invalidated by the next write that grows the
// buffer.
func (b *Buffer) Bytes() []byte { return b.data[:b.len] }

// setError records the first non-nil error.
func (b *Buffer) setError(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

// Reset clears length, cursor and error state, keeping the backing
// array for reuse.
func (b *Buffer) Reset() {
	b.len, b.pos, b.err = 0, 0, nil
}

// Release returns an owned backing array to the pool and detaches it.
// The buffer is left empty but usable; it is idempotent.
func (b *Buffer) Release() {
	if b.owned && b.data != nil {
		b.pool.Put(b.data)
	}
	b.data = nil
	b.len, b.pos, b.err = 0, 0, nil
	b.gen++
}

// SetLength sets the committed length, growing capacity if needed.
// Shrinking below the cursor fails.
func (b *Buffer) SetLength(n int) error {
	if b.err != nil {
		return b.err
	}
	if n < b.pos {
		b.setError(ErrShrinkBelowCursor)
		return b.err
	}
	if n > len(b.data) {
		if err := b.ensure(n - b.pos); err != nil {
			b.setError(err)
			return err
		}
	}
	b.len = n
	return nil
}

// SetPosition moves the cursor to n within [0, Len].
func (b *Buffer) SetPosition(n int) error {
	if b.err != nil {
		return b.err
	}
	if n < 0 || n > b.len {
		b.setError(ErrInvalidPosition)
		return b.err
	}
	b.pos = n
	return nil
}

// Skip advances the cursor by n bytes without bounds checking,
// extending the committed length if the cursor passes it. The caller
// is responsible for n being within capacity; this matches the framing
// layer's trusted-length-prefix pattern.
func (b *Buffer) Skip(n int) {
	b.pos += n
	if b.pos > b.len {
		b.len = b.pos
	}
}

// ensure guarantees capacity for extra more bytes at the cursor.
// Borrowed buffers cannot grow. Owned buffers grow to the next power of
// two, renting the new array from the pool and returning the old one.
func (b *Buffer) ensure(extra int) error {
	need := b.pos + extra
	if need <= len(b.data) {
		return nil
	}
	if !b.owned {
		return ErrFixedCapacity
	}
	if need > MaxBufferSize {
		return ErrBufferLimit
	}
	next := b.pool.Get(NextPow2(need))
	next = next[:cap(next)]
	copy(next, b.data[:b.len])
	if b.data != nil {
		b.pool.Put(b.data)
	}
	b.data = next
	b.gen++
	return nil
}

// next consumes n committed bytes at the cursor for reading.
func (b *Buffer) next(n int) []byte {
	if b.err != nil {
		return nil
	}
	if b.len-b.pos < n {
		b.setError(ErrOutOfBounds)
		return nil
	}
	p := b.data[b.pos : b.pos+n]
	b.pos += n
	return p
}

// peek is next without advancing the cursor.
func (b *Buffer) peek(n int) []byte {
	if b.err != nil {
		return nil
	}
	if b.len-b.pos < n {
		b.setError(ErrOutOfBounds)
		return nil
	}
	return b.data[b.pos : b.pos+n]
}

// grab reserves n writable bytes at the cursor, growing as needed and
// extending the committed length past the cursor.
func (b *Buffer) grab(n int) []byte {
	if b.err != nil {
		return nil
	}
	if err := b.ensure(n); err != nil {
		b.setError(err)
		return nil
	}
	p := b.data[b.pos : b.pos+n]
	b.pos += n
	if b.pos > b.len {
		b.len = b.pos
	}
	return p
}

// GetRange reserves the next n bytes and returns a Range over them,
// advancing the cursor past the reservation. The Range is valid only
// until the buffer next reallocates.
func (b *Buffer) GetRange(n int) (Range, error) {
	off := b.pos
	if p := b.grab(n); p == nil {
		return Range{}, b.err
	}
	return Range{parent: b, off: off, n: n, gen: b.gen}, nil
}

// ReadByte reads one byte at the cursor. At the end of committed data
// it returns io.EOF.
func (b *Buffer) ReadByte() (byte, error) {
	if b.err != nil {
		return 0, b.err
	}
	if b.pos >= b.len {
		b.setError(io.EOF)
		return 0, io.EOF
	}
	c := b.data[b.pos]
	b.pos++
	return c, nil
}

// WriteByte writes one byte at the cursor.
func (b *Buffer) WriteByte(c byte) error {
	if p := b.grab(1); p != nil {
		p[0] = c
	}
	return b.err
}

// Write implements io.Writer over the cursor.
func (b *Buffer) Write(p []byte) (int, error) {
	if dst := b.grab(len(p)); dst != nil {
		return copy(dst, p), nil
	}
	return 0, b.err
}

// --- Fixed-width primitive reads ---
//
// All multi-byte values are packed little-endian through explicit
// encoding/binary calls; no in-place reinterpretation of buffer memory.

func (b *Buffer) ReadUint8(dest *uint8) {
	if p := b.next(1); p != nil {
		*dest = p[0]
	}
}

func (b *Buffer) ReadUint16(dest *uint16) {
	if p := b.next(2); p != nil {
		*dest = byteOrder.Uint16(p)
	}
}

func (b *Buffer) ReadUint32(dest *uint32) {
	if p := b.next(4); p != nil {
		*dest = byteOrder.Uint32(p)
	}
}

func (b *Buffer) ReadUint64(dest *uint64) {
	if p := b.next(8); p != nil {
		*dest = byteOrder.Uint64(p)
	}
}

func (b *Buffer) ReadInt8(dest *int8) {
	if p := b.next(1); p != nil {
		*dest = int8(p[0])
	}
}

func (b *Buffer) ReadInt16(dest *int16) {
	if p := b.next(2); p != nil {
		*dest = int16(byteOrder.Uint16(p))
	}
}

func (b *Buffer) ReadInt32(dest *int32) {
	if p := b.next(4); p != nil {
		*dest = int32(byteOrder.Uint32(p))
	}
}

func (b *Buffer) ReadInt64(dest *int64) {
	if p := b.next(8); p != nil {
		*dest = int64(byteOrder.Uint64(p))
	}
}

func (b *Buffer) ReadFloat32(dest *float32) {
	if p := b.next(4); p != nil {
		*dest = math.Float32frombits(byteOrder.Uint32(p))
	}
}

func (b *Buffer) ReadFloat64(dest *float64) {
	if p := b.next(8); p != nil {
		*dest = math.Float64frombits(byteOrder.Uint64(p))
	}
}

// --- Peeks (no cursor advance) ---

func (b *Buffer) PeekByte(dest *byte) {
	if p := b.peek(1); p != nil {
		*dest = p[0]
	}
}

func (b *Buffer) PeekUint16(dest *uint16) {
	if p := b.peek(2); p != nil {
		*dest = byteOrder.Uint16(p)
	}
}

func (b *Buffer) PeekUint32(dest *uint32) {
	if p := b.peek(4); p != nil {
		*dest = byteOrder.Uint32(p)
	}
}

func (b *Buffer) PeekUint64(dest *uint64) {
	if p := b.peek(8); p != nil {
		*dest = byteOrder.Uint64(p)
	}
}

// --- Fixed-width primitive writes ---

func (b *Buffer) WriteUint8(v uint8) {
	if p := b.grab(1); p != nil {
		p[0] = v
	}
}

func (b *Buffer) WriteUint16(v uint16) {
	if p := b.grab(2); p != nil {
		byteOrder.PutUint16(p, v)
	}
}

func (b *Buffer) WriteUint32(v uint32) {
	if p := b.grab(4); p != nil {
		byteOrder.PutUint32(p, v)
	}
}

func (b *Buffer) WriteUint64(v uint64) {
	if p := b.grab(8); p != nil {
		byteOrder.PutUint64(p, v)
	}
}

func (b *Buffer) WriteInt8(v int8) {
	if p := b.grab(1); p != nil {
		p[0] = byte(v)
	}
}

func (b *Buffer) WriteInt16(v int16) {
	if p := b.grab(2); p != nil {
		byteOrder.PutUint16(p, uint16(v))
	}
}

func (b *Buffer) WriteInt32(v int32) {
	if p := b.grab(4); p != nil {
		byteOrder.PutUint32(p, uint32(v))
	}
}

func (b *Buffer) WriteInt64(v int64) {
	if p := b.grab(8); p != nil {
		byteOrder.PutUint64(p, uint64(v))
	}
}

func (b *Buffer) WriteFloat32(v float32) {
	if p := b.grab(4); p != nil {
		byteOrder.PutUint32(p, math.Float32bits(v))
	}
}

func (b *Buffer) WriteFloat64(v float64) {
	if p := b.grab(8); p != nil {
		byteOrder.PutUint64(p, math.Float64bits(v))
	}
}
