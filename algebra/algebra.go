// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package algebra

import (
	"golang.org/x/exp/constraints"

	"github.com/born-ml/ringtensor/internal/algebra"
)

// Algebra is the ring structure tensor elements are combined with:
// a zero element, addition, subtraction and multiplication.
//
// Any type implementing these four methods can be used as a tensor algebra.
type Algebra[T any] = algebra.Algebra[T]

// Numeric is the algebra of Go's built-in integer and floating-point types.
type Numeric[T constraints.Integer | constraints.Float] = algebra.Numeric[T]

// Complex is the algebra of complex64 and complex128.
type Complex[T constraints.Complex] = algebra.Complex[T]

// BigRat is the exact rational field over *big.Rat.
//
// Operations never mutate their operands, so elements may be shared
// between tensors. A nil *big.Rat reads as zero.
type BigRat = algebra.BigRat

// ModInt is the ring of integers modulo Modulus.
type ModInt = algebra.ModInt

// Common instantiations.
type (
	Float32    = Numeric[float32]
	Float64    = Numeric[float64]
	Int32      = Numeric[int32]
	Int64      = Numeric[int64]
	Complex64  = Complex[complex64]
	Complex128 = Complex[complex128]
)

// MaxModulus is the largest modulus NewModInt accepts.
const MaxModulus = algebra.MaxModulus

// NewModInt creates the ring of integers modulo n.
//
// Example:
//
//	z7, err := algebra.NewModInt(7)
//	x, _ := tensor.FromFlat([]int64{3, 5}, tensor.Shape{2}, z7)
//	y, _ := x.Mul(x) // [2, 4]
func NewModInt(n int64) (ModInt, error) {
	return algebra.NewModInt(n)
}
