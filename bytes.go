package wire

// Length-prefixed payload helpers. Strings are UTF-8 bytes and byte
// slices are raw bytes, both preceded by a 32-bit varint length. An
// empty value encodes as the single zero byte of its length prefix.

// WriteString writes a length-prefixed UTF-8 string at b's cursor. The
// payload bytes are copied straight into the buffer's backing region,
// no intermediate allocation.
func WriteString(b *Buffer, s string) {
	WriteUvarint32(b, uint32(len(s)))
	if len(s) == 0 {
		return
	}
	if p := b.grab(len(s)); p != nil {
		copy(p, s)
	}
}

// ReadString reads a length-prefixed UTF-8 string at b's cursor. The
// declared length is bounds-checked against the committed region
// before anything is allocated, so a hostile length cannot force a
// large allocation.
func ReadString(b *Buffer) (string, error) {
	n, err := ReadUvarint32(b)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	if uint32(b.Available()) < n {
		b.setError(ErrTruncatedData)
		return "", b.err
	}
	return string(b.next(int(n))), nil
}

// WriteByteSlice writes a length-prefixed byte slice at b's cursor.
func WriteByteSlice(b *Buffer, p []byte) {
	WriteUvarint32(b, uint32(len(p)))
	if len(p) == 0 {
		return
	}
	if dst := b.grab(len(p)); dst != nil {
		copy(dst, p)
	}
}

// ReadByteSlice reads a length-prefixed byte slice at b's cursor into
// a fresh slice.
func ReadByteSlice(b *Buffer) ([]byte, error) {
	p, err := readByteSliceView(b)
	if err != nil || p == nil {
		return nil, err
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

// ReadByteSliceRange reads a length-prefixed byte slice as a Range
// over the payload, avoiding the copy. The Range must be consumed
// before the buffer is written again.
func ReadByteSliceRange(b *Buffer) (Range, error) {
	n, err := ReadUvarint32(b)
	if err != nil {
		return Range{}, err
	}
	start := b.pos
	if uint32(b.Available()) < n {
		b.setError(ErrTruncatedData)
		return Range{}, b.err
	}
	b.pos += int(n)
	return Range{parent: b, off: start, n: int(n), gen: b.gen}, nil
}

func readByteSliceView(b *Buffer) ([]byte, error) {
	n, err := ReadUvarint32(b)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if uint32(b.Available()) < n {
		b.setError(ErrTruncatedData)
		return nil, b.err
	}
	return b.next(int(n)), nil
}
