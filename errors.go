package wire

import "errors"

var (
	// ErrNilMessage indicates a codec entry point was called with a nil Message.
	ErrNilMessage = errors.New("wire: nil message")

	// ErrNilStream indicates a stream helper was called with a nil
	// io.Reader or io.Writer.
	ErrNilStream = errors.New("wire: nil reader or writer")

	// ErrVarintOverflow indicates a varint encodes a value wider than the
	// 32- or 64-bit width it was decoded as.
	ErrVarintOverflow = errors.New("wire: varint exceeds target width")

	// ErrInvalidBool indicates a boolean byte decoded to something other than 0 or 1.
	ErrInvalidBool = errors.New("wire: boolean byte is not 0 or 1")

	// ErrTruncatedData indicates the data ended before a complete value could be read.
	ErrTruncatedData = errors.New("wire: truncated data")

	// ErrOutOfBounds indicates a read past the committed end of a buffer.
	ErrOutOfBounds = errors.New("wire: read past end of committed data")

	// ErrFixedCapacity indicates a write would grow a borrowed buffer.
	// Borrowed buffers wrap caller memory and are never reallocated.
	ErrFixedCapacity = errors.New("wire: borrowed buffer cannot grow")

	// ErrBufferLimit indicates a buffer would grow past MaxBufferSize.
	// Growth past the ceiling fails rather than truncating, so a malicious
	// length field cannot force unbounded allocation.
	ErrBufferLimit = errors.New("wire: buffer exceeds maximum size")

	// ErrShrinkBelowCursor indicates SetLength was asked to shrink the
	// committed length below the current cursor.
	ErrShrinkBelowCursor = errors.New("wire: cannot shrink length below cursor")

	// ErrInvalidPosition indicates a cursor position outside [0, length].
	ErrInvalidPosition = errors.New("wire: position out of range")

	// ErrSizeExceeded indicates a payload was larger than the declared
	// maximum size. The framing hint is a hard cap, not a suggestion.
	ErrSizeExceeded = errors.New("wire: payload exceeds declared maximum size")

	// ErrStaleRange indicates a Range was used after its buffer reallocated.
	ErrStaleRange = errors.New("wire: range invalidated by buffer reallocation")

	// ErrTrailingData is returned by UnmarshalStrict when bytes remain
	// after the message finished decoding, indicating a malformed or
	// mismatched payload.
	ErrTrailingData = errors.New("wire: unconsumed bytes after decoding")
)
