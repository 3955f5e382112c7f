package dma

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenjunnutter/hailort/internal/status"
)

// fakeDriver simulates a platform whose ordinary allocations may or may not
// be hardware visible.
type fakeDriver struct {
	lowMemory bool
	allocated map[uint64][]byte
	nextID    uint64
	released  []uint64
}

func newFakeDriver(lowMemory bool) *fakeDriver {
	return &fakeDriver{lowMemory: lowMemory, allocated: make(map[uint64][]byte), nextID: 1}
}

func (d *fakeDriver) ShouldUseDriverAllocation() bool { return d.lowMemory }

func (d *fakeDriver) AllocateBuffer(size int) ([]byte, uint64, error) {
	id := d.nextID
	d.nextID++
	buf := make([]byte, size)
	d.allocated[id] = buf
	return buf, id, nil
}

func (d *fakeDriver) ReleaseBuffer(id uint64) error {
	if _, ok := d.allocated[id]; !ok {
		return errors.New("unknown mapping")
	}
	delete(d.allocated, id)
	d.released = append(d.released, id)
	return nil
}

func TestAllocate_PageAligned(t *testing.T) {
	buf, err := Allocate(nil, 4000)
	require.NoError(t, err)
	defer func() { _ = buf.Release() }()

	assert.Equal(t, PolicyPageAligned, buf.Policy())
	assert.Equal(t, 4000, buf.Size())
	assert.Zero(t, buf.MappingID()%uint64(os.Getpagesize()), "mapping should be page aligned")

	// Memory must be writable across the full size.
	buf.Bytes()[0] = 0xAA
	buf.Bytes()[3999] = 0x55
}

func TestAllocate_DriverBacked(t *testing.T) {
	driver := newFakeDriver(true)

	buf, err := Allocate(driver, 1024)
	require.NoError(t, err)
	assert.Equal(t, PolicyDriverAllocated, buf.Policy())
	assert.Equal(t, uint64(1), buf.MappingID())

	require.NoError(t, buf.Release())
	assert.Equal(t, []uint64{1}, driver.released)
}

func TestAllocate_DriverNotNeeded(t *testing.T) {
	driver := newFakeDriver(false)

	buf, err := Allocate(driver, 1024)
	require.NoError(t, err)
	defer func() { _ = buf.Release() }()

	assert.Equal(t, PolicyPageAligned, buf.Policy())
	assert.Empty(t, driver.allocated, "driver allocator must not be used")
}

func TestAllocate_InvalidSize(t *testing.T) {
	_, err := Allocate(nil, 0)
	assert.Equal(t, status.InvalidArgument, status.CodeOf(err))
}

func TestFromUser_RequiresAlignment(t *testing.T) {
	aligned, err := Allocate(nil, 2*os.Getpagesize())
	require.NoError(t, err)
	defer func() { _ = aligned.Release() }()

	// Page-aligned caller memory is accepted without allocation.
	user, err := FromUser(aligned.Bytes())
	require.NoError(t, err)
	assert.Equal(t, PolicyUserOwned, user.Policy())
	require.NoError(t, user.Release())

	// An offset view is no longer aligned.
	_, err = FromUser(aligned.Bytes()[1:])
	assert.Equal(t, status.InvalidArgument, status.CodeOf(err))
}

func TestRelease_ExactlyOnce(t *testing.T) {
	buf, err := Allocate(nil, 128)
	require.NoError(t, err)

	require.NoError(t, buf.Release())
	err = buf.Release()
	assert.Equal(t, status.InvalidOperation, status.CodeOf(err))
}
