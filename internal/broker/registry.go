// Package broker implements the cross-process resource broker: handle
// registries with owner-pid accounting, client liveness tracking, and the
// gRPC service exposing devices, network groups and vstreams to client
// processes.
package broker

import (
	"github.com/wenjunnutter/hailort/internal/status"
)

// entry ties one resource object to the set of process ids that hold its
// handle.
type entry[T any] struct {
	object T
	owners map[uint32]struct{}
}

// Registry maps handles of one resource kind to objects with owner-pid
// sets. Handles are assigned monotonically and never reused, so a stale
// handle can never alias a newer resource. An entry exists exactly while
// its owner set is non-empty.
//
// The registry is not self-locking; the service serializes access.
type Registry[T any] struct {
	next    uint32
	entries map[uint32]*entry[T]
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[uint32]*entry[T])}
}

// Insert registers an object owned by pid and returns its new handle.
func (r *Registry[T]) Insert(object T, pid uint32) uint32 {
	handle := r.next
	r.next++
	r.entries[handle] = &entry[T]{
		object: object,
		owners: map[uint32]struct{}{pid: {}},
	}
	return handle
}

// Get resolves a handle.
func (r *Registry[T]) Get(handle uint32) (T, error) {
	e, ok := r.entries[handle]
	if !ok {
		var zero T
		return zero, status.Errorf(status.NotFound, "handle %d not found", handle)
	}
	return e.object, nil
}

// Dup adds pid to the owner set of an existing handle. The handle value
// itself is shared between owners.
func (r *Registry[T]) Dup(handle uint32, pid uint32) error {
	e, ok := r.entries[handle]
	if !ok {
		return status.Errorf(status.NotFound, "handle %d not found", handle)
	}
	e.owners[pid] = struct{}{}
	return nil
}

// Release drops pid from the owner set. When the set empties the entry is
// erased and the object is returned with last=true so the caller can run
// the kind-specific teardown outside the critical section.
func (r *Registry[T]) Release(handle uint32, pid uint32) (object T, last bool, err error) {
	e, ok := r.entries[handle]
	if !ok {
		var zero T
		return zero, false, status.Errorf(status.NotFound, "handle %d not found", handle)
	}
	if _, owns := e.owners[pid]; !owns {
		var zero T
		return zero, false, status.Errorf(status.InvalidOperation,
			"pid %d does not own handle %d", pid, handle)
	}
	delete(e.owners, pid)
	if len(e.owners) > 0 {
		var zero T
		return zero, false, nil
	}
	delete(r.entries, handle)
	return e.object, true, nil
}

// OwnedBy lists the handles pid owns.
func (r *Registry[T]) OwnedBy(pid uint32) []uint32 {
	var handles []uint32
	for handle, e := range r.entries {
		if _, owns := e.owners[pid]; owns {
			handles = append(handles, handle)
		}
	}
	return handles
}

// ExclusivelyOwnedBy lists the handles whose entire owner set is contained
// in pids.
func (r *Registry[T]) ExclusivelyOwnedBy(pids map[uint32]struct{}) []uint32 {
	var handles []uint32
	for handle, e := range r.entries {
		exclusive := true
		for owner := range e.owners {
			if _, ok := pids[owner]; !ok {
				exclusive = false
				break
			}
		}
		if exclusive {
			handles = append(handles, handle)
		}
	}
	return handles
}

// Len returns the number of live entries.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}
