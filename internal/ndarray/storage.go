package ndarray

import (
	"sync"
	"sync/atomic"
)

// Storage is a reference-counted contiguous buffer shared by views.
//
// Views hold a pointer to their Storage and never alias the slice directly.
// The buffer is dropped when the last view releases it; accessing a view after
// that panics.
//
// The embedded RWMutex guards in-place rearranges: FlipDimInPlace and
// ReverseInPlace take the write lock, kernels that snapshot a column take the
// read lock. Plain element access (At/Set) does not lock.
type Storage[T Elem] struct {
	data []T
	refs atomic.Int32
	mu   sync.RWMutex
}

// NewStorage allocates a zeroed buffer of n elements with one reference.
func NewStorage[T Elem](n int) *Storage[T] {
	return WrapStorage(make([]T, n))
}

// WrapStorage takes ownership of data without copying it.
func WrapStorage[T Elem](data []T) *Storage[T] {
	s := &Storage[T]{data: data}
	s.refs.Store(1)
	return s
}

// Len returns the number of elements in the buffer.
func (s *Storage[T]) Len() int {
	return len(s.data)
}

// Data returns the raw buffer.
// WARNING: Direct access to shared memory. Writes are visible to every view.
func (s *Storage[T]) Data() []T {
	return s.data
}

// Retain increments the reference count (a new view shares the buffer).
func (s *Storage[T]) Retain() {
	s.refs.Add(1)
}

// Release decrements the reference count and drops the buffer when it reaches 0.
// Views call it through View.Release, which releases at most once per view.
func (s *Storage[T]) Release() {
	if s.refs.Add(-1) == 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.data = nil
	}
}

// Refs returns the current reference count.
func (s *Storage[T]) Refs() int {
	return int(s.refs.Load())
}

// IsUnique returns true if exactly one view references the buffer.
func (s *Storage[T]) IsUnique() bool {
	return s.refs.Load() == 1
}

// RLock acquires shared access for a consistent multi-element read.
func (s *Storage[T]) RLock() { s.mu.RLock() }

// RUnlock releases shared access.
func (s *Storage[T]) RUnlock() { s.mu.RUnlock() }

// Lock acquires exclusive access for an in-place rearrange.
func (s *Storage[T]) Lock() { s.mu.Lock() }

// Unlock releases exclusive access.
func (s *Storage[T]) Unlock() { s.mu.Unlock() }
