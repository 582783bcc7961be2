// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ringtensor/algebra"
	"github.com/born-ml/ringtensor/internal/einsum"
)

// EquationError describes an einsum equation that cannot be evaluated.
// It unwraps to ErrInvalidEquation, ErrInvalidRank or ErrDimensionConflict.
type EquationError = einsum.EquationError

// Equation is a parsed einsum equation.
type Equation = einsum.Equation

// ParseEquation parses an einsum equation without evaluating it.
func ParseEquation(equation string) (*Equation, error) {
	return einsum.Parse(equation)
}

// Einsum evaluates an Einstein-summation equation.
//
// The grammar is "term(,term)*(->term)?" with one lowercase letter per
// operand dimension. Without "->" the output holds the letters that appear
// exactly once, sorted. Every distinct letter is enumerated over its extent,
// so the cost is the product of all extents, summed letters included.
//
// Example:
//
//	c, err := tensor.Einsum("ij,jk->ik", a, b) // matrix product
//	tr, err := tensor.Einsum("ii", m)          // trace as a rank-0 tensor
//	d, err := tensor.Einsum("ii->i", m)        // diagonal
func Einsum[T any, A algebra.Algebra[T]](equation string, operands ...*Tensor[T, A]) (*Tensor[T, A], error) {
	return einsum.Einsum(equation, operands...)
}

// MatMul returns the matrix product of two rank-2 tensors.
func MatMul[T any, A algebra.Algebra[T]](a, b *Tensor[T, A]) (*Tensor[T, A], error) {
	return einsum.MatMul(a, b)
}

// Trace returns the sum of the diagonal of a square rank-2 tensor.
func Trace[T any, A algebra.Algebra[T]](m *Tensor[T, A]) (T, error) {
	return einsum.Trace(m)
}

// Outer returns the outer product of two rank-1 tensors.
func Outer[T any, A algebra.Algebra[T]](a, b *Tensor[T, A]) (*Tensor[T, A], error) {
	return einsum.Outer(a, b)
}

// Dot returns the inner product of two rank-1 tensors.
func Dot[T any, A algebra.Algebra[T]](a, b *Tensor[T, A]) (T, error) {
	return einsum.Dot(a, b)
}
