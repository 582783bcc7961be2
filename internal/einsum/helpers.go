package einsum

import (
	"github.com/born-ml/ringtensor/internal/algebra"
	"github.com/born-ml/ringtensor/internal/tensor"
)

// MatMul returns the matrix product of two rank-2 tensors.
func MatMul[T any, A algebra.Algebra[T]](a, b *tensor.Tensor[T, A]) (*tensor.Tensor[T, A], error) {
	return Einsum("ij,jk->ik", a, b)
}

// Trace returns the sum of the diagonal of a square rank-2 tensor.
func Trace[T any, A algebra.Algebra[T]](m *tensor.Tensor[T, A]) (T, error) {
	r, err := Einsum("ii->", m)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.Item()
}

// Outer returns the outer product of two rank-1 tensors.
func Outer[T any, A algebra.Algebra[T]](a, b *tensor.Tensor[T, A]) (*tensor.Tensor[T, A], error) {
	return Einsum("i,j->ij", a, b)
}

// Dot returns the inner product of two rank-1 tensors of equal length.
func Dot[T any, A algebra.Algebra[T]](a, b *tensor.Tensor[T, A]) (T, error) {
	r, err := Einsum("i,i->", a, b)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.Item()
}
