package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// treeNode references itself: its wire size has no finite bound.
type treeNode struct {
	Value uint32
	Child *treeNode
}

func (n *treeNode) MaxWireSize(e *SizeEstimator) int {
	return e.Add(MaxUint32Size, e.Estimate(&treeNode{}))
}

// linkA and linkB reference each other.
type linkA struct{ B *linkB }
type linkB struct{ A *linkA }

func (a *linkA) MaxWireSize(e *SizeEstimator) int { return e.Add(MaxBoolSize, e.Estimate(&linkB{})) }
func (b *linkB) MaxWireSize(e *SizeEstimator) int { return e.Add(MaxBoolSize, e.Estimate(&linkA{})) }

// nestedState embeds a bounded child message.
type nestedState struct{}
type childState struct{}

func (n *nestedState) MaxWireSize(e *SizeEstimator) int {
	return e.Add(MaxUint64Size, e.Estimate(&childState{}))
}
func (c *childState) MaxWireSize(e *SizeEstimator) int {
	return e.Add(MaxFloat64Size, MaxBoolSize)
}

func TestEstimateBoundedMessage(t *testing.T) {
	want := MaxUint32Size + 2*MaxFloat32Size + MaxUint32Size + MaxStringSize(64) + MaxBoolSize
	assert.Equal(t, want, EstimateMaxSize(samplePlayer()))

	// Second call is served by the type cache.
	assert.Equal(t, want, EstimateMaxSize(samplePlayer()))
}

func TestEstimateNestedMessage(t *testing.T) {
	want := MaxUint64Size + MaxFloat64Size + MaxBoolSize
	assert.Equal(t, want, EstimateMaxSize(&nestedState{}))
}

func TestEstimateSelfRecursive(t *testing.T) {
	assert.Equal(t, Unbounded, EstimateMaxSize(&treeNode{}))
}

func TestEstimateMutuallyRecursive(t *testing.T) {
	assert.Equal(t, Unbounded, EstimateMaxSize(&linkA{}))
	assert.Equal(t, Unbounded, EstimateMaxSize(&linkB{}))
}

func TestAddPropagatesUnbounded(t *testing.T) {
	assert.Equal(t, 7, (&SizeEstimator{}).Add(3, 4))
	assert.Equal(t, Unbounded, (&SizeEstimator{}).Add(3, Unbounded, 4))
}

func TestSizeHint(t *testing.T) {
	// Bounded messages frame with their own worst case.
	assert.Equal(t, EstimateMaxSize(samplePlayer()), SizeHint(samplePlayer()))

	// Messages without a size method fall back to the default.
	assert.Equal(t, DefaultMaxSize, SizeHint(unsizedMessage{}))
}

// unsizedMessage implements Message but not MaxSized.
type unsizedMessage struct{}

func (unsizedMessage) Write(*Buffer) error               { return nil }
func (unsizedMessage) Read(*Buffer, bool) error          { return nil }
func (unsizedMessage) ReadSize(*Buffer, int, bool) error { return nil }
func (unsizedMessage) WriteDelta(*Buffer, Message) error { return nil }
func (unsizedMessage) CopyTo(Message) error              { return nil }
