package incremental

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	var out sample
	ok, err := s.Get("missing", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	in := sample{Name: "a", Values: []int{1, 2}}
	require.NoError(t, s.Put("k", in))

	// later changes to the input are not visible through the store
	in.Values[0] = 9

	ok, err = s.Get("k", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a", out.Name)
	assert.Equal(t, []int{1, 2}, out.Values)
}

func TestDiskStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")

	s, err := OpenDiskStore(dir)
	require.NoError(t, err)

	var out sample
	ok, err := s.Get("spec", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	v := 7
	require.NoError(t, s.Put("spec", sample{Name: "a", Values: []int{3}, Ptr: &v}))
	require.NoError(t, s.Put("spec", sample{Name: "b", Values: []int{4}, Ptr: &v}))

	reopened, err := OpenDiskStore(dir)
	require.NoError(t, err)

	ok, err = reopened.Get("spec", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b", out.Name)
	assert.Equal(t, []int{4}, out.Values)
	require.NotNil(t, out.Ptr)
	assert.Equal(t, 7, *out.Ptr)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestDiskStoreSchemaMismatch(t *testing.T) {
	s, err := OpenDiskStore(t.TempDir())
	require.NoError(t, err)

	f, err := os.Create(s.pathFor("spec"))
	require.NoError(t, err)

	enc := msgpack.NewEncoder(f)
	require.NoError(t, enc.EncodeUint16(storeSchemaVersion+1))
	require.NoError(t, enc.Encode(sample{Name: "old"}))
	require.NoError(t, f.Close())

	var out sample
	ok, err := s.Get("spec", &out)
	require.ErrorIs(t, err, ErrSchemaMismatch)
	assert.False(t, ok)
}

func TestNodeOnDiskStore(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenDiskStore(dir)
	require.NoError(t, err)

	_, reason, err := NewNode("diagnostics", WithNodeStore[[]string](s)).Update([]string{"ITH0003"})
	require.NoError(t, err)
	assert.Equal(t, StepNew, reason)

	restarted, err := OpenDiskStore(dir)
	require.NoError(t, err)

	got, reason, err := NewNode("diagnostics", WithNodeStore[[]string](restarted)).Update([]string{"ITH0003"})
	require.NoError(t, err)
	assert.Equal(t, StepCached, reason)
	assert.Equal(t, []string{"ITH0003"}, got)
}
