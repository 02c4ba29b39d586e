package wire

// Range is a borrowed, non-owning window into a Buffer's backing
// region. It stays valid only until the buffer next reallocates; any
// write that grows the buffer invalidates every outstanding Range.
// Validity is enforced with a generation counter rather than by
// convention, so use-after-reallocation surfaces as ErrStaleRange
// instead of silent corruption.
type Range struct {
	parent *Buffer
	off, n int
	gen    uint64
}

// Len returns the window's length in bytes.
func (r Range) Len() int { return r.n }

// Bytes returns the window into the parent's current backing array for
// zero-copy reads or writes. It fails with ErrStaleRange if the parent
// has reallocated since the Range was issued.
func (r Range) Bytes() ([]byte, error) {
	if r.parent == nil || r.gen != r.parent.gen {
		return nil, ErrStaleRange
	}
	return r.parent.data[r.off : r.off+r.n], nil
}
