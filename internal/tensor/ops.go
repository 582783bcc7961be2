package tensor

import (
	"fmt"

	"github.com/born-ml/ringtensor/internal/algebra"
	"github.com/born-ml/ringtensor/internal/metrics"
	"github.com/born-ml/ringtensor/internal/parallel"
)

// Add performs element-wise addition. Shapes must be equal; broadcast
// explicitly with Broadcast first.
//
// Example:
//
//	a, _ := tensor.FromFlat([]float64{1, 2, 3, 4}, Shape{2, 2}, alg)
//	b, _ := tensor.FromFlat([]float64{5, 6, 7, 8}, Shape{2, 2}, alg)
//	c, _ := a.Add(b) // [[6, 8], [10, 12]]
func (t *Tensor[T, A]) Add(other *Tensor[T, A]) (*Tensor[T, A], error) {
	return zipWith("add", t, other, t.alg.Add)
}

// Sub performs element-wise subtraction.
func (t *Tensor[T, A]) Sub(other *Tensor[T, A]) (*Tensor[T, A], error) {
	return zipWith("sub", t, other, t.alg.Sub)
}

// Mul performs element-wise (Hadamard) multiplication.
func (t *Tensor[T, A]) Mul(other *Tensor[T, A]) (*Tensor[T, A], error) {
	return zipWith("mul", t, other, t.alg.Mul)
}

// Scale multiplies every element by scalar, as element * scalar.
func (t *Tensor[T, A]) Scale(scalar T) (*Tensor[T, A], error) {
	return mapWith("scale", t, func(v T) T { return t.alg.Mul(v, scalar) })
}

// zipWith applies f position by position over two equally shaped tensors and
// returns a new owned, contiguous tensor.
func zipWith[T any, A algebra.Algebra[T]](op string, a, b *Tensor[T, A], f func(x, y T) T) (*Tensor[T, A], error) {
	if !a.layout.shape.Equal(b.layout.shape) {
		return nil, fmt.Errorf("%w: %s requires equal shapes, got %v and %v",
			ErrShapeMismatch, op, a.layout.shape, b.layout.shape)
	}

	n := a.Size()
	out := make([]T, n)
	cfg := parallel.Default()
	ia, ib := a.layout.indexer(), b.layout.indexer()

	err := readPair(a, b, func(ad, bd []T) error {
		parallel.For(n, func(i int) {
			out[i] = f(ad[ia(i)], bd[ib(i)])
		}, cfg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveOp(op, cfg.Parallel(n), n)
	return owned(out, a.layout.shape, a.alg), nil
}

// mapWith applies f to every element and returns a new owned, contiguous tensor.
func mapWith[T any, A algebra.Algebra[T]](op string, t *Tensor[T, A], f func(v T) T) (*Tensor[T, A], error) {
	n := t.Size()
	out := make([]T, n)
	cfg := parallel.Default()
	idx := t.layout.indexer()

	err := t.read(func(data []T) error {
		parallel.For(n, func(i int) {
			out[i] = f(data[idx(i)])
		}, cfg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveOp(op, cfg.Parallel(n), n)
	return owned(out, t.layout.shape, t.alg), nil
}
