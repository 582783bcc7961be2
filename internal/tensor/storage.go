package tensor

import (
	"sync"
	"sync/atomic"
)

// storage is a reference-counted flat element buffer shared by a tensor and
// every view derived from it.
//
// Each tensor handle holds one reference. The buffer is dropped when the last
// handle is released. Reads through any handle hold the read lock for the
// duration of an operation and writes hold the write lock, so concurrent Set
// calls through aliasing views never race with readers.
type storage[T any] struct {
	id       uint64 // lock ordering when two buffers are read together
	data     []T
	refCount atomic.Int32
	mu       sync.RWMutex
}

var storageIDs atomic.Uint64

// newStorage wraps data with refCount = 1. The caller gives up ownership of data.
func newStorage[T any](data []T) *storage[T] {
	s := &storage[T]{id: storageIDs.Add(1), data: data}
	s.refCount.Store(1)
	return s
}

// retain increments the reference count for a new view.
func (s *storage[T]) retain() *storage[T] {
	s.refCount.Add(1)
	return s
}

// release decrements the reference count and drops the buffer when it reaches 0.
func (s *storage[T]) release() {
	if s.refCount.Add(-1) == 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.data = nil
	}
}

// refs returns the number of live handles.
func (s *storage[T]) refs() int {
	return int(s.refCount.Load())
}

// len returns the number of cells in the buffer.
func (s *storage[T]) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
