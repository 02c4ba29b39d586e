package wire

import (
	"fmt"
	"io"
)

// Helpers for callers that own a byte-oriented I/O channel. Reads go
// through io.ReadFull, so a zero-byte read with a nil error is retried
// and only a reader error ends the stream; a transport that cannot
// block must deliver complete frames. A short read during a fixed-
// length read is always an error here, surfaced as ErrTruncatedData.

// WriteMessage serializes m through a pooled buffer and writes the
// committed bytes to w. With delimited set the payload is framed with
// a backpatched length prefix sized for maxSize (<= 0 means
// DefaultMaxSize, and the cap is enforced). Returns the bytes written.
func WriteMessage(w io.Writer, m Message, delimited bool, maxSize int) (int, error) {
	if w == nil {
		return 0, ErrNilStream
	}
	if m == nil {
		return 0, ErrNilMessage
	}
	b := NewBuffer(nil)
	defer b.Release()

	if delimited {
		if err := WriteDelimited(b, m, maxSize); err != nil {
			return 0, err
		}
	} else {
		if err := m.Write(b); err != nil {
			return 0, err
		}
		if b.Err() != nil {
			return 0, b.Err()
		}
	}

	n, err := w.Write(b.Bytes())
	if err == nil && n < b.Len() {
		err = io.ErrShortWrite
	}
	return n, err
}

// ReadMessage reads exactly size bytes from r and deserializes them
// into m through a borrowed view. Returns the bytes consumed from r.
func ReadMessage(r io.Reader, m Message, size int) (int, error) {
	if r == nil {
		return 0, ErrNilStream
	}
	if m == nil {
		return 0, ErrNilMessage
	}
	buf := defaultPool.Get(size)
	defer defaultPool.Put(buf)

	n, err := io.ReadFull(r, buf[:size])
	if err != nil {
		return n, fmt.Errorf("%w: %d of %d bytes", ErrTruncatedData, n, size)
	}
	return n, m.Read(View(buf[:size]), false)
}

// ReadMessageDelimited reads a varint length from r followed by that
// many payload bytes, and deserializes the payload into m. Lengths
// above maxSize (<= 0 means DefaultMaxSize) are rejected before any
// payload allocation. Returns the total bytes consumed from r.
func ReadMessageDelimited(r io.Reader, m Message, maxSize int) (int, error) {
	if r == nil {
		return 0, ErrNilStream
	}
	if m == nil {
		return 0, ErrNilMessage
	}
	maxSize = normalizeMaxSize(maxSize)

	size, prefixLen, err := readUvarint32Stream(r)
	if err != nil {
		return prefixLen, err
	}
	if int64(size) > int64(maxSize) {
		return prefixLen, fmt.Errorf("%w: %d > %d", ErrSizeExceeded, size, maxSize)
	}

	buf := defaultPool.Get(int(size))
	defer defaultPool.Put(buf)

	n, err := io.ReadFull(r, buf[:size])
	if err != nil {
		return prefixLen + n, fmt.Errorf("%w: %d of %d payload bytes", ErrTruncatedData, n, size)
	}
	return prefixLen + n, m.Read(View(buf[:size]), false)
}

// ReadMessageLimit reads at most limit bytes from r into a pooled
// buffer and deserializes into m, consuming exactly the bytes the
// message's own read logic used. When r is an io.Seeker the stream is
// repositioned to just past the consumed bytes even though the buffer
// was over-read. Returns the bytes the message consumed.
func ReadMessageLimit(r io.Reader, m Message, limit int) (int, error) {
	if r == nil {
		return 0, ErrNilStream
	}
	if m == nil {
		return 0, ErrNilMessage
	}
	buf := defaultPool.Get(limit)
	defer defaultPool.Put(buf)

	n, err := io.ReadFull(r, buf[:limit])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, err
	}

	v := View(buf[:n])
	if err := m.Read(v, false); err != nil {
		return v.Position(), err
	}
	if v.Err() != nil {
		return v.Position(), v.Err()
	}

	consumed := v.Position()
	if s, ok := r.(io.Seeker); ok && consumed < n {
		if _, err := s.Seek(int64(consumed-n), io.SeekCurrent); err != nil {
			return consumed, err
		}
	}
	return consumed, nil
}

// readUvarint32Stream decodes a 32-bit varint byte by byte from r,
// returning the value and the bytes consumed.
func readUvarint32Stream(r io.Reader) (uint32, int, error) {
	br, _ := r.(io.ByteReader)
	var one [1]byte
	var v uint32
	var s uint
	for i := 0; ; i++ {
		if i >= MaxUvarint32Len {
			return 0, i, ErrVarintOverflow
		}
		var c byte
		if br != nil {
			var err error
			if c, err = br.ReadByte(); err != nil {
				return 0, i, fmt.Errorf("%w: stream ended mid-varint", ErrTruncatedData)
			}
		} else {
			if _, err := io.ReadFull(r, one[:]); err != nil {
				return 0, i, fmt.Errorf("%w: stream ended mid-varint", ErrTruncatedData)
			}
			c = one[0]
		}
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
