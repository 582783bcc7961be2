package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ringtensor/internal/algebra"
)

// ToDense copies a rank-2 float64 tensor into a gonum dense matrix.
func ToDense[A algebra.Algebra[float64]](t *Tensor[float64, A]) (*mat.Dense, error) {
	if t.Rank() != 2 {
		return nil, fmt.Errorf("%w: dense matrix requires rank 2, got %d", ErrInvalidRank, t.Rank())
	}
	data, err := t.Data()
	if err != nil {
		return nil, err
	}
	return mat.NewDense(t.layout.shape[0], t.layout.shape[1], data), nil
}

// FromDense copies any gonum matrix into an owned rank-2 tensor.
func FromDense[A algebra.Algebra[float64]](m mat.Matrix, alg A) (*Tensor[float64, A], error) {
	r, c := m.Dims()
	shape := Shape{r, c}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	buf := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			buf[i*c+j] = m.At(i, j)
		}
	}
	return owned(buf, shape, alg), nil
}
