package einsum

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/born-ml/ringtensor/internal/algebra"
	"github.com/born-ml/ringtensor/internal/metrics"
	"github.com/born-ml/ringtensor/internal/tensor"
)

var logger = zerolog.Nop()

// SetLogger sets the logger used for contraction diagnostics (debug level).
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Einsum evaluates an Einstein-summation equation over the operands and
// returns a new owned tensor whose dimensions follow the output term.
//
// Every distinct index letter is enumerated over its full extent, free letters
// first, like an odometer whose last counter turns fastest. For each
// combination the addressed operand elements are multiplied left to right and
// added into the output cell selected by the free letters. The cost is the
// product of the extents of all letters, summed ones included; no contraction
// order planning is done.
//
// Example:
//
//	c, _ := einsum.Einsum("ij,jk->ik", a, b) // matrix product
//	tr, _ := einsum.Einsum("ii", m)         // trace, rank-0 result
func Einsum[T any, A algebra.Algebra[T]](equation string, operands ...*tensor.Tensor[T, A]) (*tensor.Tensor[T, A], error) {
	eq, err := Parse(equation)
	if err != nil {
		return nil, err
	}
	if len(operands) != len(eq.Inputs) {
		return nil, &EquationError{
			Equation: equation, Term: -1, Err: tensor.ErrInvalidEquation,
			Details: fmt.Sprintf("%d input terms but %d operands", len(eq.Inputs), len(operands)),
		}
	}

	p, err := plan(equation, eq, operands)
	if err != nil {
		return nil, err
	}

	alg := operands[0].Algebra()
	data := make([][]T, len(operands))
	for k, op := range operands {
		if data[k], err = op.Data(); err != nil {
			return nil, err
		}
	}

	out := make([]T, p.outShape.NumElements())
	for i := range out {
		out[i] = alg.Zero()
	}

	logger.Debug().
		Str("equation", eq.String()).
		Ints("output_shape", p.outShape).
		Int("iterations", p.iterations).
		Msg("einsum contraction")

	counter := make([]int, len(p.letters))
	for step := 0; step < p.iterations; step++ {
		dst := 0
		for l, c := range counter {
			dst += c * p.outCoef[l]
		}

		prod := data[0][p.position(0, counter)]
		for k := 1; k < len(data); k++ {
			prod = alg.Mul(prod, data[k][p.position(k, counter)])
		}
		out[dst] = alg.Add(out[dst], prod)

		for l := len(counter) - 1; l >= 0; l-- {
			counter[l]++
			if counter[l] < p.extents[l] {
				break
			}
			counter[l] = 0
		}
	}

	metrics.ObserveEinsum(p.iterations)
	return tensor.FromFlat(out, p.outShape, alg)
}

// contraction is the index bookkeeping for one Einsum call.
type contraction struct {
	letters    []rune  // Enumeration order: output letters, then summed letters.
	extents    []int   // Extent per letter.
	coefs      [][]int // Per operand, storage step per letter.
	outCoef    []int   // Output storage step per letter (0 for summed letters).
	outShape   tensor.Shape
	iterations int
}

// position is operand k's storage position for the current counter values.
func (c *contraction) position(k int, counter []int) int {
	pos := 0
	for l, v := range counter {
		pos += v * c.coefs[k][l]
	}
	return pos
}

// plan validates term ranks and dimension extents and derives the odometer.
func plan[T any, A algebra.Algebra[T]](equation string, eq *Equation, operands []*tensor.Tensor[T, A]) (*contraction, error) {
	extent := make(map[rune]int)
	var appearance []rune
	for k, term := range eq.Inputs {
		shape := operands[k].Shape()
		if len(term) != len(shape) {
			return nil, &EquationError{
				Equation: equation, Term: k, Err: tensor.ErrInvalidRank,
				Details: fmt.Sprintf("term %q has %d indices but operand has rank %d", term, len(term), len(shape)),
			}
		}
		for d, r := range term {
			prev, ok := extent[r]
			switch {
			case !ok:
				extent[r] = shape[d]
				appearance = append(appearance, r)
			case prev != shape[d]:
				return nil, &EquationError{
					Equation: equation, Term: k, Letter: r, Err: tensor.ErrDimensionConflict,
					Details: fmt.Sprintf("extent %d conflicts with earlier extent %d", shape[d], prev),
				}
			}
		}
	}

	c := &contraction{iterations: 1}
	c.letters = append(c.letters, []rune(eq.Output)...)
	for _, r := range appearance {
		if !strings.ContainsRune(eq.Output, r) {
			c.letters = append(c.letters, r)
		}
	}
	slot := make(map[rune]int, len(c.letters))
	for l, r := range c.letters {
		slot[r] = l
		c.extents = append(c.extents, extent[r])
		c.iterations *= extent[r]
	}

	c.outShape = make(tensor.Shape, len(eq.Output))
	for d, r := range eq.Output {
		c.outShape[d] = extent[r]
	}
	c.outCoef = make([]int, len(c.letters))
	for d, s := range c.outShape.ComputeStrides() {
		c.outCoef[d] = s
	}

	// A letter repeated within a term walks the diagonal: its steps add up.
	c.coefs = make([][]int, len(operands))
	for k, term := range eq.Inputs {
		strides := operands[k].Shape().ComputeStrides()
		c.coefs[k] = make([]int, len(c.letters))
		for d, r := range term {
			c.coefs[k][slot[r]] += strides[d]
		}
	}
	return c, nil
}
