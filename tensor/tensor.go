// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for strided tensors over an
// arbitrary ring.
//
// The package defines the core types:
//   - Tensor[T, A]: generic tensor whose elements are combined by algebra A
//   - Shape: tensor dimensions
//   - EquationError: detailed einsum failure
//
// Example:
//
//	a, _ := tensor.FromFlat([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, algebra.Float64{})
//	b, _ := tensor.FromFlat([]float64{5, 6, 7, 8}, tensor.Shape{2, 2}, algebra.Float64{})
//	c, _ := tensor.Einsum("ij,jk->ik", a, b) // [[19, 22], [43, 50]]
package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ringtensor/algebra"
	"github.com/born-ml/ringtensor/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
// The empty Shape{} is a rank-0 scalar.
type Shape = tensor.Shape

// Tensor is a generic strided tensor.
//
// T is the element type, A the algebra that adds and multiplies elements.
//
// A Tensor either owns its buffer or is a view that shares the buffer of the
// tensor it was derived from:
//   - Reshape (when contiguous), Slice, Transpose, Squeeze and Unsqueeze
//     return views that alias their source; Set through one is visible
//     through the other
//   - Broadcast returns a read-only view
//   - Arithmetic, reductions, Copy and Einsum return owned tensors
//
// Example:
//
//	x, _ := tensor.FromFlat([]int64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, algebra.Int64{})
//	xt, _ := x.T()        // view, shape [3 2]
//	s, _ := xt.SumAxis(0) // [6 15]
type Tensor[T any, A algebra.Algebra[T]] = tensor.Tensor[T, A]

// Creation functions

// FromFlat creates a tensor by copying data laid out in row-major order.
//
// Example:
//
//	x, err := tensor.FromFlat([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, algebra.Float64{})
func FromFlat[T any, A algebra.Algebra[T]](data []T, shape Shape, alg A) (*Tensor[T, A], error) {
	return tensor.FromFlat(data, shape, alg)
}

// Zeros creates a tensor filled with the algebra's zero.
//
// Example:
//
//	x, err := tensor.Zeros(tensor.Shape{2, 3}, algebra.Float64{})
func Zeros[T any, A algebra.Algebra[T]](shape Shape, alg A) (*Tensor[T, A], error) {
	return tensor.Zeros(shape, alg)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x, err := tensor.Full(tensor.Shape{2, 3}, 3.14, algebra.Float64{})
func Full[T any, A algebra.Algebra[T]](shape Shape, value T, alg A) (*Tensor[T, A], error) {
	return tensor.Full(shape, value, alg)
}

// FromDense copies a gonum matrix into a rank-2 tensor.
func FromDense[A algebra.Algebra[float64]](m mat.Matrix, alg A) (*Tensor[float64, A], error) {
	return tensor.FromDense(m, alg)
}

// ToDense copies a rank-2 float64 tensor into a gonum dense matrix.
func ToDense[A algebra.Algebra[float64]](t *Tensor[float64, A]) (*mat.Dense, error) {
	return tensor.ToDense(t)
}

// Utility functions

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
// Returns the resulting shape and a flag indicating if broadcasting is needed.
//
// Example:
//
//	resultShape, needsBroadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// resultShape = [3, 4], needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// BroadcastPair returns read-only views of a and b expanded to their common
// broadcast shape, ready for element-wise arithmetic.
//
// Example:
//
//	col, _ := tensor.FromFlat([]float64{1, 2, 3}, tensor.Shape{3, 1}, alg)
//	row, _ := tensor.FromFlat([]float64{10, 20}, tensor.Shape{2}, alg)
//	x, y, _ := tensor.BroadcastPair(col, row) // both [3 2]
//	sum, _ := x.Add(y)
func BroadcastPair[T any, A algebra.Algebra[T]](a, b *Tensor[T, A]) (*Tensor[T, A], *Tensor[T, A], error) {
	return tensor.BroadcastPair(a, b)
}
