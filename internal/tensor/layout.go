package tensor

import "fmt"

// layout maps logical multi-indices onto storage positions:
// pos(i0..ik) = offset + Σ ij*strides[j].
type layout struct {
	shape   Shape
	strides []int
	offset  int
}

// canonicalLayout returns the contiguous row-major layout for shape at offset 0.
func canonicalLayout(shape Shape) layout {
	return layout{
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		offset:  0,
	}
}

// isContiguous reports whether the strides are row-major for the shape.
// Extent-1 dimensions never move the position and are exempt.
func (l layout) isContiguous() bool {
	expected := 1
	for i := len(l.shape) - 1; i >= 0; i-- {
		if l.shape[i] != 1 && l.strides[i] != expected {
			return false
		}
		expected *= l.shape[i]
	}
	return true
}

// hasBroadcast reports whether any non-trivial dimension has stride 0.
func (l layout) hasBroadcast() bool {
	for i, s := range l.strides {
		if s == 0 && l.shape[i] > 1 {
			return true
		}
	}
	return false
}

// positionOf validates indices and returns their storage position.
func (l layout) positionOf(indices []int) (int, error) {
	if len(indices) != len(l.shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrInvalidRank, len(l.shape), len(indices))
	}
	pos := l.offset
	for i, idx := range indices {
		if idx < 0 || idx >= l.shape[i] {
			return 0, fmt.Errorf("%w: index %d for dimension %d (size %d)", ErrIndexOutOfBounds, idx, i, l.shape[i])
		}
		pos += idx * l.strides[i]
	}
	return pos, nil
}

// position returns the storage position of the linear row-major index i.
func (l layout) position(i int) int {
	pos := l.offset
	for d := len(l.shape) - 1; d >= 0; d-- {
		pos += (i % l.shape[d]) * l.strides[d]
		i /= l.shape[d]
	}
	return pos
}

// indexer returns a function from linear row-major index to storage position.
func (l layout) indexer() func(i int) int {
	if l.isContiguous() {
		off := l.offset
		return func(i int) int { return off + i }
	}
	return l.position
}

// walk calls fn for every logical element in row-major order with its linear
// index and storage position. It carries indices like an odometer instead of
// dividing for each element.
func (l layout) walk(fn func(i, pos int)) {
	n := l.shape.NumElements()
	if l.isContiguous() {
		for i := 0; i < n; i++ {
			fn(i, l.offset+i)
		}
		return
	}

	idx := make([]int, len(l.shape))
	pos := l.offset
	for i := 0; i < n; i++ {
		fn(i, pos)
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			pos += l.strides[d]
			if idx[d] < l.shape[d] {
				break
			}
			pos -= idx[d] * l.strides[d]
			idx[d] = 0
		}
	}
}
