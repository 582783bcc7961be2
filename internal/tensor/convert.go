package tensor

import "fmt"

// Data returns the elements in logical row-major order as a new slice.
// Unlike the storage buffer, the result never aliases the tensor.
func (t *Tensor[T, A]) Data() ([]T, error) {
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
	return out, nil
}

// Item returns the single element of a tensor with Size() == 1.
func (t *Tensor[T, A]) Item() (T, error) {
	var zero T
	if t.Size() != 1 {
		return zero, fmt.Errorf("%w: Item requires exactly one element, shape is %v", ErrShapeMismatch, t.layout.shape)
	}
	var v T
	err := t.read(func(data []T) error {
		v = data[t.layout.offset]
		return nil
	})
	if err != nil {
		return zero, err
	}
	return v, nil
}

// ToNested converts the tensor into nested Go slices.
//
// A rank-0 tensor yields its element of type T, rank 1 yields []T, and higher
// ranks yield []any whose innermost level is []T.
//
// Example:
//
//	x, _ := tensor.FromFlat([]float64{1, 2, 3, 4}, Shape{2, 2}, alg)
//	n, _ := x.ToNested() // []any{[]float64{1, 2}, []float64{3, 4}}
func (t *Tensor[T, A]) ToNested() (any, error) {
	var result any
	err := t.read(func(data []T) error {
		if t.Rank() == 0 {
			result = data[t.layout.offset]
			return nil
		}
		result = t.nested(data, 0, t.layout.offset)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (t *Tensor[T, A]) nested(data []T, dim, pos int) any {
	n, stride := t.layout.shape[dim], t.layout.strides[dim]
	if dim == t.Rank()-1 {
		row := make([]T, n)
		for i := range row {
			row[i] = data[pos+i*stride]
		}
		return row
	}
	level := make([]any, n)
	for i := range level {
		level[i] = t.nested(data, dim+1, pos+i*stride)
	}
	return level
}
