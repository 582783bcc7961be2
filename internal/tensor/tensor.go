// Package tensor implements dense strided tensors over an arbitrary ring.
package tensor

import (
	"fmt"
	"sync/atomic"

	"github.com/born-ml/ringtensor/internal/algebra"
)

// Tensor is a generic strided tensor with element type T and algebra A.
// It is either the owner of its storage or a view borrowing another tensor's
// storage; both hold a counted reference to the shared buffer.
//
// Type Parameters:
//   - T: Element type
//   - A: Ring operations over T, resolved at compile time
//
// Example:
//
//	alg := algebra.Numeric[float64]{}
//	a, _ := tensor.FromFlat([]float64{1, 2, 3, 4}, Shape{2, 2}, alg)
//	b, _ := a.Add(a)
type Tensor[T any, A algebra.Algebra[T]] struct {
	store    *storage[T]
	layout   layout
	alg      A
	view     bool // borrows storage created by another tensor
	readOnly bool // broadcast-derived; Set is rejected
	released atomic.Bool
}

// FromFlat creates an owned tensor from a row-major slice.
// The slice is copied into the tensor's memory.
func FromFlat[T any, A algebra.Algebra[T]](data []T, shape Shape, alg A) (*Tensor[T, A], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	buf := make([]T, len(data))
	copy(buf, data)
	return owned(buf, shape, alg), nil
}

// Zeros creates an owned tensor filled with the algebra's zero element.
func Zeros[T any, A algebra.Algebra[T]](shape Shape, alg A) (*Tensor[T, A], error) {
	return Full(shape, alg.Zero(), alg)
}

// Full creates an owned tensor with every element set to value.
func Full[T any, A algebra.Algebra[T]](shape Shape, value T, alg A) (*Tensor[T, A], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	buf := make([]T, shape.NumElements())
	for i := range buf {
		buf[i] = value
	}
	return owned(buf, shape, alg), nil
}

// owned wraps buf, which must hold exactly shape.NumElements() cells.
func owned[T any, A algebra.Algebra[T]](buf []T, shape Shape, alg A) *Tensor[T, A] {
	return &Tensor[T, A]{
		store:  newStorage(buf),
		layout: canonicalLayout(shape),
		alg:    alg,
	}
}

// derive creates a view sharing t's storage with a new layout.
func (t *Tensor[T, A]) derive(l layout, readOnly bool) *Tensor[T, A] {
	return &Tensor[T, A]{
		store:    t.store.retain(),
		layout:   l,
		alg:      t.alg,
		view:     true,
		readOnly: t.readOnly || readOnly,
	}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T, A]) Shape() Shape {
	return t.layout.shape.Clone()
}

// Strides returns a copy of the tensor's strides, in storage cells.
func (t *Tensor[T, A]) Strides() []int {
	return append([]int(nil), t.layout.strides...)
}

// Offset returns the tensor's base position in its storage.
func (t *Tensor[T, A]) Offset() int {
	return t.layout.offset
}

// Rank returns the number of dimensions.
func (t *Tensor[T, A]) Rank() int {
	return len(t.layout.shape)
}

// Size returns the total number of elements.
func (t *Tensor[T, A]) Size() int {
	return t.layout.shape.NumElements()
}

// Algebra returns the tensor's element algebra.
func (t *Tensor[T, A]) Algebra() A {
	return t.alg
}

// IsContiguous reports whether the strides are canonical row-major.
func (t *Tensor[T, A]) IsContiguous() bool {
	return t.layout.isContiguous()
}

// IsView reports whether the tensor borrows storage created by another tensor.
func (t *Tensor[T, A]) IsView() bool {
	return t.view
}

// ReadOnly reports whether Set is rejected. Broadcast views and everything
// derived from them are read-only because one cell backs many indices.
func (t *Tensor[T, A]) ReadOnly() bool {
	return t.readOnly
}

// SharesStorage reports whether t and other are backed by the same buffer.
func (t *Tensor[T, A]) SharesStorage(other *Tensor[T, A]) bool {
	return t.store == other.store
}

// Release drops this handle's reference to the storage. The buffer is freed
// once every tensor sharing it has been released. Calling Release twice is a
// no-op; any other use of a released tensor fails with ErrReleased.
func (t *Tensor[T, A]) Release() {
	if t.released.CompareAndSwap(false, true) {
		t.store.release()
	}
}

// Get returns the element at the given indices.
func (t *Tensor[T, A]) Get(indices ...int) (T, error) {
	var zero T
	pos, err := t.layout.positionOf(indices)
	if err != nil {
		return zero, err
	}

	var v T
	err = t.read(func(data []T) error {
		v = data[pos]
		return nil
	})
	if err != nil {
		return zero, err
	}
	return v, nil
}

// Set stores value at the given indices. The write is visible through every
// view sharing the same storage cell.
func (t *Tensor[T, A]) Set(value T, indices ...int) error {
	if t.readOnly {
		return fmt.Errorf("%w: cannot set element of broadcast view %v", ErrReadOnly, t.layout.shape)
	}
	pos, err := t.layout.positionOf(indices)
	if err != nil {
		return err
	}
	if err := t.alive(); err != nil {
		return err
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.store.data == nil {
		return ErrReleased
	}
	t.store.data[pos] = value
	return nil
}

// alive fails with ErrReleased once Release has been called on t.
func (t *Tensor[T, A]) alive() error {
	if t.released.Load() {
		return ErrReleased
	}
	return nil
}

// read runs fn with the raw buffer under the storage read lock.
func (t *Tensor[T, A]) read(fn func(data []T) error) error {
	if err := t.alive(); err != nil {
		return err
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	if t.store.data == nil {
		return ErrReleased
	}
	return fn(t.store.data)
}

// readPair runs fn with both raw buffers under their read locks. Locks are
// taken in storage-id order so concurrent pairs cannot deadlock.
func readPair[T any, A algebra.Algebra[T]](a, b *Tensor[T, A], fn func(ad, bd []T) error) error {
	if err := b.alive(); err != nil {
		return err
	}
	if a.store == b.store {
		return a.read(func(data []T) error { return fn(data, data) })
	}
	if a.store.id > b.store.id {
		return b.read(func(bd []T) error {
			return a.read(func(ad []T) error { return fn(ad, bd) })
		})
	}
	return a.read(func(ad []T) error {
		return b.read(func(bd []T) error { return fn(ad, bd) })
	})
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T, A]) String() string {
	kind := "Tensor"
	if t.view {
		kind = "View"
	}
	return fmt.Sprintf("%s%v(strides=%v, offset=%d)", kind, t.layout.shape, t.layout.strides, t.layout.offset)
}
