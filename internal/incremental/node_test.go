package incremental

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string
	Values []int
	Ptr    *int
	Handle any `hash:"ignore" msgpack:"-"`
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(sample{Name: "a", Values: []int{1, 2}})
	require.NoError(t, err)

	b, err := Fingerprint(sample{Name: "a", Values: []int{1, 2}, Handle: struct{}{}})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Fingerprint(sample{Name: "a", Values: []int{2, 1}})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestNodeUpdate(t *testing.T) {
	n := NewNode[sample]("step")
	assert.Equal(t, "step", n.Name())

	_, reason, err := n.Update(sample{Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, StepNew, reason)

	_, reason, err = n.Update(sample{Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, StepCached, reason)

	_, reason, err = n.Update(sample{Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, StepModified, reason)

	got, ok := n.Value()
	require.True(t, ok)
	assert.Equal(t, "b", got.Name)

	n.Reset()

	_, ok = n.Value()
	assert.False(t, ok)

	_, reason, err = n.Update(sample{Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, StepNew, reason)
}

func TestNodeKeepsPreviousValueWhenCached(t *testing.T) {
	n := NewNode[*sample]("step")

	first := &sample{Name: "a"}
	_, _, err := n.Update(first)
	require.NoError(t, err)

	got, reason, err := n.Update(&sample{Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, StepCached, reason)
	assert.Same(t, first, got)
}

func TestNodeCustomEqual(t *testing.T) {
	calls := 0
	n := NewNode("step", WithEqual(func(a, b sample) bool {
		calls++
		return a.Name == b.Name
	}))

	_, _, err := n.Update(sample{Name: "a"})
	require.NoError(t, err)

	_, reason, err := n.Update(sample{Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, StepCached, reason)
	assert.Equal(t, 1, calls)
}

func TestNodeSeededFromStore(t *testing.T) {
	store := NewMemoryStore()

	first := NewNode("spec", WithNodeStore[sample](store))
	_, reason, err := first.Update(sample{Name: "a", Values: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, StepNew, reason)
	assert.Equal(t, 1, store.Len())

	// a fresh node on the same store behaves like a restarted host
	second := NewNode("spec", WithNodeStore[sample](store))
	got, reason, err := second.Update(sample{Name: "a", Values: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, StepCached, reason)
	assert.Equal(t, []int{1}, got.Values)

	third := NewNode("spec", WithNodeStore[sample](store))
	_, reason, err = third.Update(sample{Name: "a", Values: []int{2}})
	require.NoError(t, err)
	assert.Equal(t, StepModified, reason)
}

func TestStepReasonString(t *testing.T) {
	assert.Equal(t, "new", StepNew.String())
	assert.Equal(t, "cached", StepCached.String())
	assert.Equal(t, "modified", StepModified.String())
	assert.Equal(t, "removed", StepRemoved.String())
	assert.Equal(t, "unknown", StepReason(42).String())
}
