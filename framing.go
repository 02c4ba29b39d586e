package wire

import "fmt"

const (
	// DefaultMaxSize is the framing size hint used when the caller
	// passes none. Payloads are expected to stay under 2 MiB.
	DefaultMaxSize = 2 << 20

	// MaxFramedSize is the largest payload a 4-byte prefix can frame.
	MaxFramedSize = 1<<28 - 1
)

// PrefixSize returns the smallest fixed prefix width (1-4 bytes)
// guaranteed to hold the varint encoding of any length up to maxSize.
func PrefixSize(maxSize int) int {
	switch {
	case maxSize < 1<<7:
		return 1
	case maxSize < 1<<14:
		return 2
	case maxSize < 1<<21:
		return 3
	default:
		return 4
	}
}

// normalizeMaxSize applies the default and the 4-byte-prefix ceiling.
func normalizeMaxSize(maxSize int) int {
	if maxSize <= 0 {
		return DefaultMaxSize
	}
	if maxSize > MaxFramedSize {
		return MaxFramedSize
	}
	return maxSize
}

// WriteDelimited writes m length-delimited at b's cursor without a
// pre-pass to compute the payload length. It reserves a fixed-width
// prefix sized for maxSize, writes the payload, then backpatches the
// true length into the reservation. maxSize is a hard cap: a payload
// that outgrows it fails with ErrSizeExceeded. Pass maxSize <= 0 for
// DefaultMaxSize.
func WriteDelimited(b *Buffer, m Message, maxSize int) error {
	if m == nil {
		return ErrNilMessage
	}
	maxSize = normalizeMaxSize(maxSize)
	prefix := PrefixSize(maxSize)

	at := b.pos
	if b.grab(prefix) == nil {
		return b.err
	}
	start := b.pos
	if err := m.Write(b); err != nil {
		b.setError(err)
		return err
	}
	if b.err != nil {
		return b.err
	}
	size := b.pos - start
	if size > maxSize {
		err := fmt.Errorf("%w: %d > %d", ErrSizeExceeded, size, maxSize)
		b.setError(err)
		return err
	}
	backpatch(b.data[at:at+prefix], uint32(size))
	return nil
}

// backpatch encodes v into a reserved prefix of exactly len(p) bytes.
// When the compact encoding is shorter than the reservation, the
// encoding is padded to the full width: the last real byte gets its
// continuation bit set, intermediate slots become 0x80 (continue,
// value 0), and the final slot terminates with 0x00. The result
// decodes to v under the standard varint decoder without shifting any
// payload bytes.
func backpatch(p []byte, v uint32) {
	n := PutUvarint32(p, v)
	if n == len(p) {
		return
	}
	p[n-1] |= 0x80
	for i := n; i < len(p)-1; i++ {
		p[i] = 0x80
	}
	p[len(p)-1] = 0x00
}

// ReadDelimited reads a length-delimited message at b's cursor: a
// compact or padded varint length, then exactly that many payload
// bytes handed to m.Read through a borrowed view. The cursor ends just
// past the payload regardless of how many bytes m consumed. maxSize
// bounds the accepted length; pass <= 0 for DefaultMaxSize.
func ReadDelimited(b *Buffer, m Message, maxSize int) error {
	if m == nil {
		return ErrNilMessage
	}
	maxSize = normalizeMaxSize(maxSize)

	size, err := ReadUvarint32(b)
	if err != nil {
		return err
	}
	if int64(size) > int64(maxSize) {
		err := fmt.Errorf("%w: %d > %d", ErrSizeExceeded, size, maxSize)
		b.setError(err)
		return err
	}
	if uint32(b.Available()) < size {
		b.setError(ErrTruncatedData)
		return b.err
	}
	payload := View(b.data[b.pos : b.pos+int(size)])
	if err := m.Read(payload, false); err != nil {
		b.setError(err)
		return err
	}
	b.Skip(int(size))
	return nil
}
