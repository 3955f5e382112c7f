// Package dma provides host-memory buffers whose layout is eligible for
// direct hardware memory access.
//
// A buffer is created under one of three policies, tried in order:
//  1. caller-supplied memory that is already page aligned (no allocation),
//  2. a driver-backed low-memory allocation, when the platform driver
//     reports that ordinary allocations are not hardware visible,
//  3. an anonymous page-aligned mapping.
package dma

import (
	"os"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/wenjunnutter/hailort/internal/status"
)

// Policy records how a buffer's memory was obtained.
type Policy int

const (
	// PolicyUserOwned means the caller supplied the memory; no allocation
	// was performed and release does not unmap anything.
	PolicyUserOwned Policy = iota
	// PolicyDriverAllocated means the memory came from the driver's
	// low-memory allocator.
	PolicyDriverAllocated
	// PolicyPageAligned means the memory is an anonymous page-aligned
	// mapping owned by the buffer.
	PolicyPageAligned
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyUserOwned:
		return "user-owned"
	case PolicyDriverAllocated:
		return "driver-allocated"
	case PolicyPageAligned:
		return "page-aligned"
	default:
		return "unknown"
	}
}

// Driver is the narrow slice of the platform driver the buffer layer needs.
// The bus protocol behind it is out of scope here.
type Driver interface {
	// ShouldUseDriverAllocation reports whether ordinary host allocations
	// on this platform are not DMA-able, forcing low-memory allocation.
	ShouldUseDriverAllocation() bool
	// AllocateBuffer returns hardware-visible memory and its mapping
	// identifier.
	AllocateBuffer(size int) ([]byte, uint64, error)
	// ReleaseBuffer releases a driver allocation by mapping identifier.
	ReleaseBuffer(id uint64) error
}

// Buffer is a DMA-able host allocation. Identity is tied to the mapping:
// a Buffer must not be copied, and its mapping is released exactly once.
type Buffer struct {
	mu       sync.Mutex
	data     []byte
	policy   Policy
	mapping  uint64
	driver   Driver
	released bool
}

// FromUser wraps caller-supplied memory. The memory must be page aligned
// and must outlive every transfer that uses it.
func FromUser(buf []byte) (*Buffer, error) {
	if len(buf) == 0 {
		return nil, status.New(status.InvalidArgument, "empty user buffer")
	}
	addr := uintptr(unsafePointer(buf))
	if addr%uintptr(os.Getpagesize()) != 0 {
		return nil, status.Errorf(status.InvalidArgument,
			"user buffer address 0x%x is not page aligned", addr)
	}
	return &Buffer{
		data:    buf,
		policy:  PolicyUserOwned,
		mapping: uint64(addr),
	}, nil
}

// Allocate creates a buffer of the given size. When driver is non-nil and
// reports that ordinary allocations are not hardware visible, the driver's
// low-memory allocator is used; otherwise the buffer is an anonymous
// page-aligned mapping.
func Allocate(driver Driver, size int) (*Buffer, error) {
	if size <= 0 {
		return nil, status.Errorf(status.InvalidArgument, "invalid buffer size %d", size)
	}

	if driver != nil && driver.ShouldUseDriverAllocation() {
		data, id, err := driver.AllocateBuffer(size)
		if err != nil {
			return nil, status.Errorf(status.OutOfHostMemory,
				"driver allocation of %d bytes failed: %v", size, err)
		}
		return &Buffer{
			data:    data,
			policy:  PolicyDriverAllocated,
			mapping: id,
			driver:  driver,
		}, nil
	}

	mapped, err := unix.Mmap(-1, 0, pageCeil(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, status.Errorf(status.OutOfHostMemory,
			"mmap of %d bytes failed: %v", size, err)
	}
	return &Buffer{
		data:    mapped[:size],
		policy:  PolicyPageAligned,
		mapping: uint64(uintptr(unsafePointer(mapped))),
	}, nil
}

// Bytes returns the buffer memory.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Size returns the usable buffer size in bytes.
func (b *Buffer) Size() int {
	return len(b.data)
}

// Policy returns the allocation policy the buffer was created under.
func (b *Buffer) Policy() Policy {
	return b.policy
}

// MappingID returns the driver-specific identifier used to register this
// buffer with the hardware transport.
func (b *Buffer) MappingID() uint64 {
	return b.mapping
}

// Release frees the mapping. It must be called exactly once; a second call
// is an INVALID_OPERATION. User-owned memory is left untouched.
func (b *Buffer) Release() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.released {
		return status.New(status.InvalidOperation, "buffer already released")
	}
	b.released = true

	switch b.policy {
	case PolicyUserOwned:
		b.data = nil
		return nil
	case PolicyDriverAllocated:
		b.data = nil
		return b.driver.ReleaseBuffer(b.mapping)
	case PolicyPageAligned:
		full := b.data[:pageCeil(len(b.data))]
		b.data = nil
		if err := unix.Munmap(full); err != nil {
			return status.Errorf(status.InternalFailure, "munmap failed: %v", err)
		}
		return nil
	default:
		return status.Errorf(status.InternalFailure, "unknown buffer policy %d", b.policy)
	}
}

// pageCeil rounds size up to a whole number of pages.
func pageCeil(size int) int {
	page := os.Getpagesize()
	return (size + page - 1) / page * page
}
