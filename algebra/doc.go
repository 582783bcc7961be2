// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package algebra provides the element algebras used by ringtensor tensors.
//
// # Overview
//
// A tensor's element type T is paired with an algebra A at compile time.
// The algebra supplies the zero element and the ring operations the tensor
// engine needs:
//   - Numeric: float32, float64 and all integer types
//   - Complex: complex64 and complex128
//   - BigRat: exact rationals (*big.Rat)
//   - ModInt: integers modulo n
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ringtensor/algebra"
//	    "github.com/born-ml/ringtensor/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.FromFlat([]float64{1, 2, 3}, tensor.Shape{3}, algebra.Float64{})
//
//	    q := algebra.BigRat{}
//	    r, _ := tensor.FromFlat([]*big.Rat{big.NewRat(1, 3)}, tensor.Shape{1}, q)
//	}
//
// # Custom Algebras
//
// Any type with Zero, Add, Sub and Mul methods over T is an Algebra[T].
// Add should be associative and commutative: parallel reductions regroup
// additions.
package algebra
