// Package algebra defines the ring capability tensor elements must provide
// and the stock implementations used by the ringtensor engine.
package algebra

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Algebra is the minimal ring structure a tensor needs for its element type.
//
// Add is expected to be associative and commutative. Parallel reductions and
// scatter-adds only produce order-independent results under that assumption;
// floating-point algebras will observe rounding differences between the
// sequential and the parallel paths.
type Algebra[T any] interface {
	Zero() T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
}

// Numeric is the algebra of Go's built-in integer and floating-point types.
type Numeric[T constraints.Integer | constraints.Float] struct{}

// Zero returns 0.
func (Numeric[T]) Zero() T { return 0 }

// Add returns a + b.
func (Numeric[T]) Add(a, b T) T { return a + b }

// Sub returns a - b.
func (Numeric[T]) Sub(a, b T) T { return a - b }

// Mul returns a * b.
func (Numeric[T]) Mul(a, b T) T { return a * b }

// Complex is the algebra of complex64 and complex128.
type Complex[T constraints.Complex] struct{}

// Zero returns 0+0i.
func (Complex[T]) Zero() T { return 0 }

// Add returns a + b.
func (Complex[T]) Add(a, b T) T { return a + b }

// Sub returns a - b.
func (Complex[T]) Sub(a, b T) T { return a - b }

// Mul returns a * b.
func (Complex[T]) Mul(a, b T) T { return a * b }

// BigRat is exact rational arithmetic over *big.Rat.
//
// Operands are never mutated; every operation allocates its result. A nil
// operand is treated as zero.
type BigRat struct{}

// Zero returns a fresh 0/1.
func (BigRat) Zero() *big.Rat { return new(big.Rat) }

// Add returns a + b.
func (BigRat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(ratOrZero(a), ratOrZero(b)) }

// Sub returns a - b.
func (BigRat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(ratOrZero(a), ratOrZero(b)) }

// Mul returns a * b.
func (BigRat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(ratOrZero(a), ratOrZero(b)) }

func ratOrZero(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}
	return r
}
