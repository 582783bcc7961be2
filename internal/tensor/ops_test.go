package tensor

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ringtensor/internal/algebra"
	"github.com/born-ml/ringtensor/internal/metrics"
	"github.com/born-ml/ringtensor/internal/parallel"
)

// withParallel forces the parallel path for the duration of a test.
func withParallel(t *testing.T, workers int) {
	t.Helper()
	prev := parallel.Default()
	parallel.SetDefault(parallel.Config{Enabled: true, NumWorkers: workers, Threshold: parallel.DefaultThreshold})
	t.Cleanup(func() { parallel.SetDefault(prev) })
}

func TestElementwise(t *testing.T) {
	a := mustFromFlat(t, []float64{1, 2, 3, 4}, Shape{2, 2})
	b := mustFromFlat(t, []float64{5, 6, 7, 8}, Shape{2, 2})

	tests := []struct {
		name string
		op   func() (*Tensor[float64, f64], error)
		want []float64
	}{
		{"add", func() (*Tensor[float64, f64], error) { return a.Add(b) }, []float64{6, 8, 10, 12}},
		{"sub", func() (*Tensor[float64, f64], error) { return a.Sub(b) }, []float64{-4, -4, -4, -4}},
		{"mul", func() (*Tensor[float64, f64], error) { return a.Mul(b) }, []float64{5, 12, 21, 32}},
		{"scale", func() (*Tensor[float64, f64], error) { return a.Scale(10) }, []float64{10, 20, 30, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op()
			require.NoError(t, err)
			assert.Equal(t, Shape{2, 2}, got.Shape())
			assert.Equal(t, tt.want, mustData(t, got))
			assert.True(t, got.IsContiguous())
			assert.False(t, got.IsView())
			assert.False(t, got.SharesStorage(a))
		})
	}
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	a := mustFromFlat(t, seq(6), Shape{2, 3})
	b := mustFromFlat(t, seq(6), Shape{3, 2})
	c := mustFromFlat(t, seq(6), Shape{6})

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.Sub(c)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// No implicit broadcasting.
	row := mustFromFlat(t, seq(3), Shape{3})
	_, err = a.Mul(row)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestElementwise_Views(t *testing.T) {
	a := mustFromFlat(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	at, err := a.T()
	require.NoError(t, err)
	b := mustFromFlat(t, []float64{10, 20, 30, 40, 50, 60}, Shape{3, 2})

	got, err := at.Add(b)
	require.NoError(t, err)
	// a^T = [[1,4],[2,5],[3,6]]
	assert.Equal(t, []float64{11, 24, 32, 45, 53, 66}, mustData(t, got))

	row := mustFromFlat(t, []float64{1, 2, 3}, Shape{3})
	wide, err := row.Broadcast(Shape{2, 3})
	require.NoError(t, err)
	prod, err := a.Mul(wide)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 9, 4, 10, 18}, mustData(t, prod))
}

func TestElementwise_Parallel(t *testing.T) {
	withParallel(t, 4)
	alg := algebra.Numeric[int64]{}

	n := 3000
	av := make([]int64, n)
	bv := make([]int64, n)
	for i := range av {
		av[i] = int64(i)
		bv[i] = int64(2 * i)
	}
	a, err := FromFlat(av, Shape{30, 100}, alg)
	require.NoError(t, err)
	b, err := FromFlat(bv, Shape{30, 100}, alg)
	require.NoError(t, err)

	before := metrics.OpCount("add", metrics.ModeParallel)
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, before+1, metrics.OpCount("add", metrics.ModeParallel))

	data := mustData(t, sum)
	for i, v := range data {
		require.Equal(t, int64(3*i), v, "position %d", i)
	}

	// Same result through a strided view.
	bt, err := b.Transpose(1, 0)
	require.NoError(t, err)
	at, err := a.Transpose(1, 0)
	require.NoError(t, err)
	viaT, err := at.Add(bt)
	require.NoError(t, err)
	back, err := viaT.Transpose(1, 0)
	require.NoError(t, err)
	assert.Equal(t, data, mustData(t, back))
}

func TestElementwise_SequentialBelowThreshold(t *testing.T) {
	withParallel(t, 4)
	x := mustFromFlat(t, seq(999), Shape{999})

	before := metrics.OpCount("scale", metrics.ModeSequential)
	_, err := x.Scale(2)
	require.NoError(t, err)
	assert.Equal(t, before+1, metrics.OpCount("scale", metrics.ModeSequential))
}

func TestElementwise_OtherAlgebras(t *testing.T) {
	t.Run("modular", func(t *testing.T) {
		m, err := algebra.NewModInt(5)
		require.NoError(t, err)
		a, err := FromFlat([]int64{1, 2, 3, 4}, Shape{4}, m)
		require.NoError(t, err)
		b, err := FromFlat([]int64{4, 4, 4, 4}, Shape{4}, m)
		require.NoError(t, err)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, []int64{0, 1, 2, 3}, mustData(t, sum))

		prod, err := a.Mul(b)
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 3, 2, 1}, mustData(t, prod))
	})

	t.Run("rational", func(t *testing.T) {
		a, err := FromFlat([]*big.Rat{big.NewRat(1, 2), big.NewRat(1, 3)}, Shape{2}, algebra.BigRat{})
		require.NoError(t, err)
		s, err := a.Scale(big.NewRat(3, 1))
		require.NoError(t, err)
		got := mustData(t, s)
		assert.Equal(t, "3/2", got[0].RatString())
		assert.Equal(t, "1", got[1].RatString())
	})

	t.Run("complex", func(t *testing.T) {
		a, err := FromFlat([]complex128{1i, 2}, Shape{2}, algebra.Complex[complex128]{})
		require.NoError(t, err)
		sq, err := a.Mul(a)
		require.NoError(t, err)
		assert.Equal(t, []complex128{-1, 4}, mustData(t, sq))
	})
}
