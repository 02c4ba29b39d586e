package wire

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// Maximum-wire-size estimation. Compiled message types report a
// worst-case encoded size so callers can pick framing hints without
// measuring; recursive schemas have no finite bound and report
// Unbounded instead of looping.

// Unbounded is the sentinel returned for messages whose maximum wire
// size has no finite bound (self- or mutually-recursive schemas).
const Unbounded = -1

// Per-field worst-case sizes for generated size methods.
const (
	MaxBoolSize    = 1
	MaxUint32Size  = MaxUvarint32Len
	MaxUint64Size  = MaxUvarint64Len
	MaxFloat32Size = 4
	MaxFloat64Size = 8
)

// MaxStringSize returns the worst-case wire size of a string field
// bounded at maxLen bytes.
func MaxStringSize(maxLen int) int { return MaxUvarint32Len + maxLen }

// MaxSized is implemented by compiled message types that can report a
// worst-case encoded size. Nested message fields must be sized through
// the estimator, never by calling MaxWireSize directly, so recursion
// is detected.
type MaxSized interface {
	MaxWireSize(e *SizeEstimator) int
}

// sizeCache memoizes estimates per concrete type, mirroring the cost
// profile of reflection-free generated code after the first call.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// SizeEstimator walks a message type's size graph, tracking the types
// on the current path to cut recursion.
type SizeEstimator struct {
	visiting map[reflect.Type]struct{}
}

// EstimateMaxSize returns m's worst-case encoded size, or Unbounded
// for recursive definitions. Results are cached by concrete type.
func EstimateMaxSize(m MaxSized) int {
	t := reflect.TypeOf(m)
	if size, ok := sizeCache.Load(t); ok {
		return size
	}
	e := &SizeEstimator{visiting: make(map[reflect.Type]struct{})}
	size := e.Estimate(m)
	sizeCache.Store(t, size)
	return size
}

// Estimate sizes one message within an ongoing walk. A type already on
// the path means the schema references itself: the bound is infinite.
func (e *SizeEstimator) Estimate(m MaxSized) int {
	t := reflect.TypeOf(m)
	if _, ok := e.visiting[t]; ok {
		return Unbounded
	}
	e.visiting[t] = struct{}{}
	size := m.MaxWireSize(e)
	delete(e.visiting, t)
	return size
}

// Add combines field sizes, propagating Unbounded.
func (e *SizeEstimator) Add(sizes ...int) int {
	total := 0
	for _, s := range sizes {
		if s == Unbounded {
			return Unbounded
		}
		total += s
	}
	return total
}

// SizeHint picks a framing size hint for m: its bounded maximum wire
// size when it reports one, DefaultMaxSize otherwise.
func SizeHint(m Message) int {
	if ms, ok := m.(MaxSized); ok {
		if size := EstimateMaxSize(ms); size > 0 {
			return size
		}
	}
	return DefaultMaxSize
}
