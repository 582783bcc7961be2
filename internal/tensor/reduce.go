package tensor

import (
	"fmt"

	"github.com/born-ml/ringtensor/internal/metrics"
	"github.com/born-ml/ringtensor/internal/parallel"
)

// Sum adds all elements together.
//
// Below the parallel threshold the fold runs strictly left to right. Above
// it, chunks are folded concurrently and combined in order; this assumes the
// algebra's Add is associative, and floating-point results may differ from the
// sequential fold in the last bits.
func (t *Tensor[T, A]) Sum() (T, error) {
	var result T
	n := t.Size()
	if n == 0 {
		return result, ErrEmptyTensor
	}

	cfg := parallel.Default()
	idx := t.layout.indexer()
	err := t.read(func(data []T) error {
		result = parallel.Reduce(n, func(i int) T { return data[idx(i)] }, t.alg.Add, cfg)
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	metrics.ObserveOp("sum", cfg.Parallel(n), 1)
	return result, nil
}

// SumAxis reduces along axis, returning a tensor whose shape omits that
// dimension. A rank-1 input reduces to a rank-0 tensor.
//
// Each source element is scattered into its destination cell, which starts at
// the algebra's zero element. The scatter runs sequentially.
//
// Example:
//
//	x, _ := tensor.FromFlat([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, alg)
//	y, _ := x.SumAxis(0) // [5, 7, 9]
//	z, _ := x.SumAxis(1) // [6, 15]
func (t *Tensor[T, A]) SumAxis(axis int) (*Tensor[T, A], error) {
	rank := t.Rank()
	if axis < 0 || axis >= rank {
		return nil, fmt.Errorf("%w: axis %d for rank-%d tensor", ErrInvalidAxis, axis, rank)
	}

	src := t.layout.shape
	outShape := make(Shape, 0, rank-1)
	outShape = append(outShape, src[:axis]...)
	outShape = append(outShape, src[axis+1:]...)

	out := make([]T, outShape.NumElements())
	for i := range out {
		out[i] = t.alg.Zero()
	}

	// Row-major source index i splits into (outer, k, inner) around axis;
	// the destination drops k.
	inner := 1
	for _, d := range src[axis+1:] {
		inner *= d
	}
	extent := src[axis]

	err := t.read(func(data []T) error {
		t.layout.walk(func(i, pos int) {
			outer := i / (extent * inner)
			dst := outer*inner + i%inner
			out[dst] = t.alg.Add(out[dst], data[pos])
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveOp("sum_axis", false, len(out))
	return owned(out, outShape, t.alg), nil
}
