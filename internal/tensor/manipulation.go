package tensor

import (
	"fmt"

	"github.com/born-ml/ringtensor/internal/algebra"
)

// Reshape returns a tensor with the same elements in row-major order and a new shape.
//
// Contiguous tensors are reshaped zero-copy: the result is a view over the
// same storage. Otherwise the elements are first materialized with Copy and
// the result owns the new storage.
//
// Example:
//
//	x, _ := tensor.FromFlat(data, Shape{2, 3}, alg)
//	y, _ := x.Reshape(Shape{3, 2}) // shares storage with x
func (t *Tensor[T, A]) Reshape(newShape Shape) (*Tensor[T, A], error) {
	if err := newShape.Validate(); err != nil {
		return nil, err
	}
	if newShape.NumElements() != t.Size() {
		return nil, fmt.Errorf("%w: cannot reshape %v (%d elements) to %v (%d elements)",
			ErrShapeMismatch, t.layout.shape, t.Size(), newShape, newShape.NumElements())
	}
	if err := t.alive(); err != nil {
		return nil, err
	}

	if !t.layout.isContiguous() {
		c, err := t.Copy()
		if err != nil {
			return nil, err
		}
		c.layout = canonicalLayout(newShape)
		return c, nil
	}

	l := canonicalLayout(newShape)
	l.offset = t.layout.offset
	return t.derive(l, false), nil
}

// Broadcast returns a read-only view of the tensor expanded to target.
//
// Existing dimensions are aligned with the rightmost dimensions of target.
// An aligned dimension must either match the target extent or be 1, in which
// case its stride becomes 0. Leading target dimensions are repeated with
// stride 0. No data is copied.
//
// Example:
//
//	row, _ := tensor.FromFlat([]float64{1, 2, 3}, Shape{3}, alg)
//	m, _ := row.Broadcast(Shape{2, 3}) // [[1, 2, 3], [1, 2, 3]]
func (t *Tensor[T, A]) Broadcast(target Shape) (*Tensor[T, A], error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	rank := t.Rank()
	if len(target) < rank {
		return nil, fmt.Errorf("%w: target %v has fewer dimensions than %v",
			ErrIncompatibleBroadcast, target, t.layout.shape)
	}
	if err := t.alive(); err != nil {
		return nil, err
	}

	strides := make([]int, len(target))
	lead := len(target) - rank
	for i := len(target) - 1; i >= lead; i-- {
		old := i - lead
		switch t.layout.shape[old] {
		case target[i]:
			strides[i] = t.layout.strides[old]
		case 1:
			strides[i] = 0
		default:
			return nil, fmt.Errorf("%w: cannot expand dimension %d from %d to %d (%v -> %v)",
				ErrIncompatibleBroadcast, old, t.layout.shape[old], target[i], t.layout.shape, target)
		}
	}

	l := layout{shape: target.Clone(), strides: strides, offset: t.layout.offset}
	return t.derive(l, true), nil
}

// BroadcastPair broadcasts a and b to their common NumPy-style shape so they
// can be combined element-wise.
func BroadcastPair[T any, A algebra.Algebra[T]](a, b *Tensor[T, A]) (*Tensor[T, A], *Tensor[T, A], error) {
	shape, _, err := BroadcastShapes(a.layout.shape, b.layout.shape)
	if err != nil {
		return nil, nil, err
	}
	ba, err := a.Broadcast(shape)
	if err != nil {
		return nil, nil, err
	}
	bb, err := b.Broadcast(shape)
	if err != nil {
		ba.Release()
		return nil, nil, err
	}
	return ba, bb, nil
}

// Slice returns a view of the box starting at starts with extents sizes.
// Strides are unchanged; the offset advances by Σ starts[d]*strides[d].
//
// Example:
//
//	x, _ := tensor.FromFlat(data, Shape{4, 4}, alg)
//	y, _ := x.Slice([]int{1, 1}, []int{2, 2}) // central 2x2 block
func (t *Tensor[T, A]) Slice(starts, sizes []int) (*Tensor[T, A], error) {
	rank := t.Rank()
	if len(starts) != rank || len(sizes) != rank {
		return nil, fmt.Errorf("%w: slice of rank-%d tensor needs %d starts and sizes, got %d and %d",
			ErrInvalidRank, rank, rank, len(starts), len(sizes))
	}
	if err := Shape(sizes).Validate(); err != nil {
		return nil, err
	}
	if err := t.alive(); err != nil {
		return nil, err
	}

	offset := t.layout.offset
	for d := 0; d < rank; d++ {
		if starts[d] < 0 || starts[d]+sizes[d] > t.layout.shape[d] {
			return nil, fmt.Errorf("%w: slice [%d, %d) of dimension %d (size %d)",
				ErrIndexOutOfBounds, starts[d], starts[d]+sizes[d], d, t.layout.shape[d])
		}
		offset += starts[d] * t.layout.strides[d]
	}

	l := layout{
		shape:   Shape(sizes).Clone(),
		strides: append([]int(nil), t.layout.strides...),
		offset:  offset,
	}
	return t.derive(l, false), nil
}

// Transpose permutes the dimensions: result[i0..ik] = t[i(perm[0])..i(perm[k])],
// so dimension j of the result is dimension perm[j] of t.
//
// The result is a zero-copy view with permuted strides; use Copy to materialize it.
//
// Example:
//
//	x, _ := tensor.FromFlat(data, Shape{2, 3, 4}, alg)
//	y, _ := x.Transpose(2, 0, 1) // Shape{4, 2, 3}
func (t *Tensor[T, A]) Transpose(perm ...int) (*Tensor[T, A], error) {
	rank := t.Rank()
	if len(perm) != rank {
		return nil, fmt.Errorf("%w: permutation %v for rank-%d tensor", ErrInvalidRank, perm, rank)
	}
	seen := make([]bool, rank)
	for _, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return nil, fmt.Errorf("%w: %v is not a permutation of [0, %d)", ErrInvalidPermutation, perm, rank)
		}
		seen[p] = true
	}
	if err := t.alive(); err != nil {
		return nil, err
	}

	l := layout{
		shape:   make(Shape, rank),
		strides: make([]int, rank),
		offset:  t.layout.offset,
	}
	for j, p := range perm {
		l.shape[j] = t.layout.shape[p]
		l.strides[j] = t.layout.strides[p]
	}
	return t.derive(l, false), nil
}

// T swaps the two dimensions of a rank-2 tensor.
func (t *Tensor[T, A]) T() (*Tensor[T, A], error) {
	if t.Rank() != 2 {
		return nil, fmt.Errorf("%w: T requires a rank-2 tensor, got rank %d", ErrInvalidRank, t.Rank())
	}
	return t.Transpose(1, 0)
}

// Unsqueeze adds a dimension of size 1 at the specified position.
//
// Supports negative dim indexing (-1 appends).
// This is a view operation (no data copy).
func (t *Tensor[T, A]) Unsqueeze(dim int) (*Tensor[T, A], error) {
	rank := t.Rank()
	if dim < 0 {
		dim += rank + 1
	}
	if dim < 0 || dim > rank {
		return nil, fmt.Errorf("%w: unsqueeze dim %d for rank-%d tensor", ErrInvalidAxis, dim, rank)
	}
	if err := t.alive(); err != nil {
		return nil, err
	}

	stride := 1
	if dim < rank {
		stride = t.layout.strides[dim] * t.layout.shape[dim]
	}
	l := layout{
		shape:   append(append(t.layout.shape[:dim:dim], 1), t.layout.shape[dim:]...),
		strides: append(append(t.layout.strides[:dim:dim], stride), t.layout.strides[dim:]...),
		offset:  t.layout.offset,
	}
	return t.derive(l, false), nil
}

// Squeeze removes a dimension of size 1 at the specified position.
//
// Supports negative dim indexing.
// This is a view operation (no data copy).
func (t *Tensor[T, A]) Squeeze(dim int) (*Tensor[T, A], error) {
	rank := t.Rank()
	if dim < 0 {
		dim += rank
	}
	if dim < 0 || dim >= rank {
		return nil, fmt.Errorf("%w: squeeze dim %d for rank-%d tensor", ErrInvalidAxis, dim, rank)
	}
	if t.layout.shape[dim] != 1 {
		return nil, fmt.Errorf("%w: cannot squeeze dimension %d of size %d", ErrShapeMismatch, dim, t.layout.shape[dim])
	}
	if err := t.alive(); err != nil {
		return nil, err
	}

	l := layout{
		shape:   append(t.layout.shape[:dim:dim], t.layout.shape[dim+1:]...),
		strides: append(t.layout.strides[:dim:dim], t.layout.strides[dim+1:]...),
		offset:  t.layout.offset,
	}
	return t.derive(l, false), nil
}

// Copy materializes the tensor into new owned, contiguous storage in logical order.
func (t *Tensor[T, A]) Copy() (*Tensor[T, A], error) {
	out := make([]T, t.Size())
	err := t.read(func(data []T) error {
		t.layout.walk(func(i, pos int) {
			out[i] = data[pos]
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return owned(out, t.layout.shape, t.alg), nil
}

// Contiguous returns a contiguous tensor with the same elements: a view over
// the same storage when t is already contiguous, otherwise a Copy.
func (t *Tensor[T, A]) Contiguous() (*Tensor[T, A], error) {
	if err := t.alive(); err != nil {
		return nil, err
	}
	if t.layout.isContiguous() {
		return t.derive(t.layout, false), nil
	}
	return t.Copy()
}
