package wire

// Message is the capability set every compiled message type implements.
// The codec never inspects a message's fields; it only drives these
// methods and moves the surrounding bytes.
//
// Any method may fail on malformed or truncated input. After a failure
// the target's state is undefined and must be discarded by the caller;
// the codec never retries.
type Message interface {
	// Write serializes the full state at b's cursor.
	Write(b *Buffer) error

	// Read deserializes at b's cursor. With delta set it merges only
	// the fields present in a delta-encoded payload; otherwise it
	// replaces all state.
	Read(b *Buffer, delta bool) error

	// ReadSize is Read bounded to at most size bytes of input.
	ReadSize(b *Buffer, size int, delta bool) error

	// WriteDelta serializes only the fields that differ from prev.
	// prev must be a prior full or merged instance of the same
	// concrete type.
	WriteDelta(b *Buffer, prev Message) error

	// CopyTo deep-copies this message's values into dst, an existing
	// instance of the same concrete type.
	CopyTo(dst Message) error
}
