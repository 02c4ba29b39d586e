package wire

// Base-128 varint codec. Each byte carries 7 data bits, little-endian
// bit order, with the high bit set on every byte except the last.
// Signed values are zig-zag mapped first so small magnitudes stay
// short. All functions are stateless; the buffer forms advance the
// cursor and latch errors on the buffer, the raw forms work on a slice
// at an explicit offset (needed when backpatching a reserved prefix).

const (
	// MaxUvarint32Len is the longest encoding of a 32-bit varint.
	MaxUvarint32Len = 5
	// MaxUvarint64Len is the longest encoding of a 64-bit varint.
	MaxUvarint64Len = 10
)

// PutUvarint32 encodes v at the start of p and returns the number of
// bytes written. p must have room for MaxUvarint32Len bytes in the
// worst case.
func PutUvarint32(p []byte, v uint32) int {
	i := 0
	for v >= 0x80 {
		p[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	p[i] = byte(v)
	return i + 1
}

// PutUvarint64 encodes v at the start of p and returns the number of
// bytes written.
func PutUvarint64(p []byte, v uint64) int {
	i := 0
	for v >= 0x80 {
		p[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	p[i] = byte(v)
	return i + 1
}

// Uvarint32 decodes a 32-bit varint from the start of p, returning the
// value and the number of bytes consumed. A 5th byte with any of its
// top 4 bits set means the value is wider than 32 bits.
func Uvarint32(p []byte) (uint32, int, error) {
	var v uint32
	var s uint
	for i := 0; ; i++ {
		if i >= len(p) {
			return 0, i, ErrTruncatedData
		}
		if i >= MaxUvarint32Len {
			return 0, i, ErrVarintOverflow
		}
		c := p[i]
		if i == MaxUvarint32Len-1 && c&0xf0 != 0 {
			return 0, i, ErrVarintOverflow
		}
		v |= uint32(c&0x7f) << s
		if c&0x80 == 0 {
			return v, i + 1, nil
		}
		s += 7
	}
}

// Uvarint64 decodes a 64-bit varint from the start of p. A 10th byte
// with any of its top 7 bits set means the value is wider than 64 bits.
func Uvarint64(p []byte) (uint64, int, error) {
	var v uint64
	var s uint
	for i := 0; ; i++ {
		if i >= len(p) {
			return 0, i, ErrTruncatedData
		}
		if i >= MaxUvarint64Len {
			return 0, i, ErrVarintOverflow
		}
		c := p[i]
		if i == MaxUvarint64Len-1 && c&0xfe != 0 {
			return 0, i, ErrVarintOverflow
		}
		v |= uint64(c&0x7f) << s
		if c&0x80 == 0 {
			return v, i + 1, nil
		}
		s += 7
	}
}

// WriteUvarint32 encodes v at b's cursor and returns the number of
// bytes written.
func WriteUvarint32(b *Buffer, v uint32) int {
	var tmp [MaxUvarint32Len]byte
	n := PutUvarint32(tmp[:], v)
	if p := b.grab(n); p != nil {
		copy(p, tmp[:n])
		return n
	}
	return 0
}

// WriteUvarint64 encodes v at b's cursor and returns the number of
// bytes written.
func WriteUvarint64(b *Buffer, v uint64) int {
	var tmp [MaxUvarint64Len]byte
	n := PutUvarint64(tmp[:], v)
	if p := b.grab(n); p != nil {
		copy(p, tmp[:n])
		return n
	}
	return 0
}

// ReadUvarint32 decodes a 32-bit varint at b's cursor.
func ReadUvarint32(b *Buffer) (uint32, error) {
	if b.err != nil {
		return 0, b.err
	}
	v, n, err := Uvarint32(b.data[b.pos:b.len])
	if err != nil {
		b.setError(err)
		return 0, err
	}
	b.pos += n
	return v, nil
}

// ReadUvarint64 decodes a 64-bit varint at b's cursor.
func ReadUvarint64(b *Buffer) (uint64, error) {
	if b.err != nil {
		return 0, b.err
	}
	v, n, err := Uvarint64(b.data[b.pos:b.len])
	if err != nil {
		b.setError(err)
		return 0, err
	}
	b.pos += n
	return v, nil
}

// zigzag maps signed to unsigned so small magnitudes encode short:
// 0,-1,1,-2,2... -> 0,1,2,3,4...
func zigzag32(v int32) uint32   { return uint32((v << 1) ^ (v >> 31)) }
func unzigzag32(u uint32) int32 { return int32(u>>1) ^ -int32(u&1) }
func zigzag64(v int64) uint64   { return uint64((v << 1) ^ (v >> 63)) }
func unzigzag64(u uint64) int64 { return int64(u>>1) ^ -int64(u&1) }

// WriteVarint32 zig-zag encodes v at b's cursor and returns the number
// of bytes written.
func WriteVarint32(b *Buffer, v int32) int { return WriteUvarint32(b, zigzag32(v)) }

// WriteVarint64 zig-zag encodes v at b's cursor and returns the number
// of bytes written.
func WriteVarint64(b *Buffer, v int64) int { return WriteUvarint64(b, zigzag64(v)) }

// ReadVarint32 decodes a zig-zag 32-bit varint at b's cursor.
func ReadVarint32(b *Buffer) (int32, error) {
	u, err := ReadUvarint32(b)
	return unzigzag32(u), err
}

// ReadVarint64 decodes a zig-zag 64-bit varint at b's cursor.
func ReadVarint64(b *Buffer) (int64, error) {
	u, err := ReadUvarint64(b)
	return unzigzag64(u), err
}

// WriteBool encodes v as a single 0 or 1 byte.
func WriteBool(b *Buffer, v bool) {
	if v {
		b.WriteByte(1)
	} else {
		b.WriteByte(0)
	}
}

// ReadBool decodes a single-byte boolean. Any byte other than 0 or 1
// is malformed data.
func ReadBool(b *Buffer) (bool, error) {
	if b.err != nil {
		return false, b.err
	}
	p := b.next(1)
	if p == nil {
		return false, b.err
	}
	if p[0] > 1 {
		b.setError(ErrInvalidBool)
		return false, b.err
	}
	return p[0] == 1, nil
}

// SkipVarint advances past one varint without decoding it, for fields
// whose value is not needed. It enforces the 64-bit length bound.
func SkipVarint(b *Buffer) error {
	if b.err != nil {
		return b.err
	}
	for i := 0; ; i++ {
		if b.pos >= b.len {
			b.setError(ErrTruncatedData)
			return b.err
		}
		if i >= MaxUvarint64Len {
			b.setError(ErrVarintOverflow)
			return b.err
		}
		c := b.data[b.pos]
		b.pos++
		if c&0x80 == 0 {
			return nil
		}
	}
}
