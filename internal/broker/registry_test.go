package broker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenjunnutter/hailort/internal/status"
)

func TestRegistryInsertGetRelease(t *testing.T) {
	r := NewRegistry[string]()

	handle := r.Insert("resource", 100)
	got, err := r.Get(handle)
	require.NoError(t, err)
	assert.Equal(t, "resource", got)
	assert.Equal(t, 1, r.Len())

	obj, last, err := r.Release(handle, 100)
	require.NoError(t, err)
	assert.True(t, last)
	assert.Equal(t, "resource", obj)
	assert.Equal(t, 0, r.Len())

	_, err = r.Get(handle)
	assert.True(t, status.Is(err, status.NotFound))
}

func TestRegistryHandlesNeverReused(t *testing.T) {
	r := NewRegistry[int]()

	first := r.Insert(1, 100)
	_, _, err := r.Release(first, 100)
	require.NoError(t, err)

	second := r.Insert(2, 100)
	assert.NotEqual(t, first, second)

	// A stale handle can never alias the newer resource.
	_, err = r.Get(first)
	assert.True(t, status.Is(err, status.NotFound))
}

func TestRegistryDupTeardownOnce(t *testing.T) {
	r := NewRegistry[string]()

	handle := r.Insert("shared", 100)
	require.NoError(t, r.Dup(handle, 200))

	_, last, err := r.Release(handle, 100)
	require.NoError(t, err)
	assert.False(t, last)

	// Object is still reachable for the remaining owner.
	_, err = r.Get(handle)
	require.NoError(t, err)

	_, last, err = r.Release(handle, 200)
	require.NoError(t, err)
	assert.True(t, last)
}

func TestRegistryReleaseByNonOwner(t *testing.T) {
	r := NewRegistry[string]()

	handle := r.Insert("owned", 100)
	_, _, err := r.Release(handle, 200)
	assert.True(t, status.Is(err, status.InvalidOperation))

	// The real owner is unaffected.
	_, err = r.Get(handle)
	assert.NoError(t, err)
}

func TestRegistryDupUnknownHandle(t *testing.T) {
	r := NewRegistry[string]()
	err := r.Dup(42, 100)
	assert.True(t, status.Is(err, status.NotFound))
}

func TestRegistryOwnedBy(t *testing.T) {
	r := NewRegistry[int]()

	a := r.Insert(1, 100)
	b := r.Insert(2, 100)
	c := r.Insert(3, 200)
	require.NoError(t, r.Dup(c, 100))

	assert.ElementsMatch(t, []uint32{a, b, c}, r.OwnedBy(100))
	assert.ElementsMatch(t, []uint32{c}, r.OwnedBy(200))
}

func TestRegistryExclusivelyOwnedBy(t *testing.T) {
	r := NewRegistry[int]()

	solo := r.Insert(1, 100)
	shared := r.Insert(2, 100)
	require.NoError(t, r.Dup(shared, 200))

	dead := map[uint32]struct{}{100: {}}
	assert.ElementsMatch(t, []uint32{solo}, r.ExclusivelyOwnedBy(dead))

	dead[200] = struct{}{}
	assert.ElementsMatch(t, []uint32{solo, shared}, r.ExclusivelyOwnedBy(dead))
}
