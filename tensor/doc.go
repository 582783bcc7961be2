// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides generic strided tensors and Einstein summation.
//
// # Overview
//
// Tensors are dense multi-dimensional arrays whose element type is any Go
// type paired with an algebra (see package algebra). This package provides:
//   - Generic tensors (Tensor[T, A]) over float, integer, complex, exact
//     rational and modular elements
//   - Zero-copy views: reshape, slice, transpose, broadcast
//   - Element-wise arithmetic and reductions
//   - Einsum contraction
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ringtensor/algebra"
//	    "github.com/born-ml/ringtensor/tensor"
//	)
//
//	func main() {
//	    alg := algebra.Float64{}
//
//	    a, _ := tensor.FromFlat([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, alg)
//	    b, _ := tensor.FromFlat([]float64{5, 6, 7, 8}, tensor.Shape{2, 2}, alg)
//
//	    sum, _ := a.Add(b)                     // [[6, 8], [10, 12]]
//	    prod, _ := tensor.MatMul(a, b)         // [[19, 22], [43, 50]]
//	    tr, _ := tensor.Trace(a)               // 5
//	}
//
// # Views and Aliasing
//
// A view shares its source's storage. Writes through a slice, reshape or
// transpose view are visible through the source and vice versa. Broadcast
// views repeat elements and are read-only: Set returns ErrReadOnly.
//
// Storage is reference counted. Release drops a tensor's handle; the buffer
// is freed when the last handle is gone. Using a released handle returns
// ErrReleased.
//
// # Broadcasting
//
// Element-wise operations require equal shapes. Broadcast explicitly first:
//
//	col, _ := tensor.FromFlat([]float64{1, 2, 3}, tensor.Shape{3, 1}, alg) // (3, 1)
//	row, _ := tensor.FromFlat([]float64{1, 2}, tensor.Shape{2}, alg)       // (2)
//	x, y, _ := tensor.BroadcastPair(col, row)                              // (3, 2)
//	z, _ := x.Add(y)
//
// # Concurrency
//
// Element-wise operations and Sum run in parallel once a tensor has at least
// 1000 elements. Reads through any number of views may run concurrently;
// Set takes the storage's write lock.
//
// Parallel Sum reorders additions. Algebras whose Add is not associative
// (such as floating point at the last bit) may see run-to-run differences.
package tensor
