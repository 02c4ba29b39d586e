package wire

// Slice-level conveniences over pooled buffers. These are the simple
// entry points; callers on a hot path should hold their own Buffer and
// drive the Message methods directly to skip the output copy.

// Marshal serializes m's full state into a fresh slice.
// A nil pool selects the process-wide default.
func Marshal(pool *Pool, m Message) ([]byte, error) {
	if m == nil {
		return nil, ErrNilMessage
	}
	b := NewBuffer(pool)
	defer b.Release()
	if err := m.Write(b); err != nil {
		return nil, err
	}
	if b.Err() != nil {
		return nil, b.Err()
	}
	out := make([]byte, b.Len())
	copy(out, b.Bytes())
	return out, nil
}

// MarshalDelta serializes only the fields of m that differ from prev.
func MarshalDelta(pool *Pool, m, prev Message) ([]byte, error) {
	if m == nil || prev == nil {
		return nil, ErrNilMessage
	}
	b := NewBuffer(pool)
	defer b.Release()
	if err := m.WriteDelta(b, prev); err != nil {
		return nil, err
	}
	if b.Err() != nil {
		return nil, b.Err()
	}
	out := make([]byte, b.Len())
	copy(out, b.Bytes())
	return out, nil
}

// Unmarshal deserializes data into m, replacing all of m's state. The
// data slice is only borrowed for the duration of the call.
func Unmarshal(data []byte, m Message) error {
	if m == nil {
		return ErrNilMessage
	}
	b := View(data)
	if err := m.Read(b, false); err != nil {
		return err
	}
	return b.Err()
}

// UnmarshalDelta merges a delta-encoded payload into m.
func UnmarshalDelta(data []byte, m Message) error {
	if m == nil {
		return ErrNilMessage
	}
	b := View(data)
	if err := m.Read(b, true); err != nil {
		return err
	}
	return b.Err()
}

// UnmarshalStrict is Unmarshal but rejects payloads the message does
// not fully consume. The wire format is length-exact, so leftover
// bytes indicate a malformed or mismatched payload.
func UnmarshalStrict(data []byte, m Message) error {
	if m == nil {
		return ErrNilMessage
	}
	b := View(data)
	if err := m.Read(b, false); err != nil {
		return err
	}
	if b.Err() != nil {
		return b.Err()
	}
	if b.Available() != 0 {
		return ErrTrailingData
	}
	return nil
}
