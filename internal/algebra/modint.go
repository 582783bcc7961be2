package algebra

import "fmt"

// ModInt is the ring of integers modulo Modulus.
//
// Results are always reduced into [0, Modulus). Inputs outside that range are
// reduced first, so negative literals behave as their residues. Construct
// with NewModInt; the zero value has no modulus and is not usable.
type ModInt struct {
	Modulus int64
}

// MaxModulus bounds the modulus so that sums of two residues never overflow.
const MaxModulus = 1 << 62

// NewModInt returns the ring Z/nZ for 1 <= n <= MaxModulus.
func NewModInt(n int64) (ModInt, error) {
	if n < 1 || n > MaxModulus {
		return ModInt{}, fmt.Errorf("modulus must be in [1, %d], got %d", int64(MaxModulus), n)
	}
	return ModInt{Modulus: n}, nil
}

// Zero returns 0.
func (m ModInt) Zero() int64 { return 0 }

// Add returns (a + b) mod n.
func (m ModInt) Add(a, b int64) int64 { return m.Reduce(m.Reduce(a) + m.Reduce(b)) }

// Sub returns (a - b) mod n.
func (m ModInt) Sub(a, b int64) int64 { return m.Reduce(m.Reduce(a) - m.Reduce(b)) }

// Mul returns (a * b) mod n.
func (m ModInt) Mul(a, b int64) int64 {
	a, b = m.Reduce(a), m.Reduce(b)
	// Russian-peasant multiplication keeps intermediates below 2n.
	var r int64
	for b > 0 {
		if b&1 == 1 {
			r = m.Reduce(r + a)
		}
		a = m.Reduce(a << 1)
		b >>= 1
	}
	return r
}

// Reduce maps v onto its canonical residue in [0, n).
func (m ModInt) Reduce(v int64) int64 {
	r := v % m.Modulus
	if r < 0 {
		r += m.Modulus
	}
	return r
}
