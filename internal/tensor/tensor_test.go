package tensor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ringtensor/internal/algebra"
)

type f64 = algebra.Numeric[float64]

// mustFromFlat creates a float64 tensor, failing the test on error.
func mustFromFlat(t *testing.T, data []float64, shape Shape) *Tensor[float64, f64] {
	t.Helper()
	x, err := FromFlat(data, shape, f64{})
	require.NoError(t, err)
	return x
}

// seq returns 0, 1, ..., n-1 as float64.
func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func mustData[T any, A algebra.Algebra[T]](t *testing.T, x *Tensor[T, A]) []T {
	t.Helper()
	d, err := x.Data()
	require.NoError(t, err)
	return d
}

func TestFromFlat(t *testing.T) {
	t.Run("shape and size", func(t *testing.T) {
		for _, shape := range []Shape{{1}, {5}, {2, 3}, {2, 3, 4}, {1, 1, 7, 1}} {
			x := mustFromFlat(t, seq(shape.NumElements()), shape)
			assert.Equal(t, shape.NumElements(), x.Size())
			assert.Equal(t, len(shape), x.Rank())
			assert.Equal(t, shape, x.Shape())
			assert.Equal(t, shape.ComputeStrides(), x.Strides())
			assert.Equal(t, 0, x.Offset())
			assert.True(t, x.IsContiguous())
			assert.False(t, x.IsView())
		}
	})

	t.Run("scalar", func(t *testing.T) {
		x := mustFromFlat(t, []float64{42}, Shape{})
		assert.Equal(t, 0, x.Rank())
		assert.Equal(t, 1, x.Size())
		v, err := x.Get()
		require.NoError(t, err)
		assert.Equal(t, 42.0, v)
	})

	t.Run("copies input", func(t *testing.T) {
		data := []float64{1, 2, 3}
		x := mustFromFlat(t, data, Shape{3})
		data[0] = 100
		v, err := x.Get(0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := FromFlat([]float64{1, 2, 3}, Shape{2, 2}, f64{})
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("non-positive extent", func(t *testing.T) {
		_, err := FromFlat([]float64{}, Shape{2, 0}, f64{})
		assert.ErrorIs(t, err, ErrInvalidShape)
		_, err = FromFlat([]float64{1}, Shape{-1}, f64{})
		assert.ErrorIs(t, err, ErrInvalidShape)
	})
}

func TestZerosFull(t *testing.T) {
	z, err := Zeros(Shape{2, 2}, f64{})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, mustData(t, z))

	f, err := Full(Shape{3}, int64(7), algebra.Numeric[int64]{})
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 7, 7}, mustData(t, f))

	_, err = Zeros(Shape{0}, f64{})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestGetSet(t *testing.T) {
	x := mustFromFlat(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	v, err := x.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	require.NoError(t, x.Set(60, 1, 2))
	v, err = x.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 60.0, v)

	t.Run("wrong rank", func(t *testing.T) {
		_, err := x.Get(1)
		assert.ErrorIs(t, err, ErrInvalidRank)
		assert.ErrorIs(t, x.Set(0, 1, 2, 3), ErrInvalidRank)
	})

	t.Run("out of bounds never clamps", func(t *testing.T) {
		for _, idx := range [][]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}} {
			_, err := x.Get(idx...)
			assert.ErrorIs(t, err, ErrIndexOutOfBounds, "get %v", idx)
			assert.ErrorIs(t, x.Set(0, idx...), ErrIndexOutOfBounds, "set %v", idx)
		}
	})
}

func TestRelease(t *testing.T) {
	x := mustFromFlat(t, []float64{1, 2, 3, 4}, Shape{2, 2})
	v, err := x.Slice([]int{1, 0}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, x.store.refs())
	assert.Equal(t, 4, x.store.len())

	x.Release()
	x.Release() // no-op
	assert.Equal(t, 1, x.store.refs())

	_, err = x.Get(0, 0)
	assert.ErrorIs(t, err, ErrReleased)
	assert.ErrorIs(t, x.Set(1, 0, 0), ErrReleased)
	_, err = x.Reshape(Shape{4})
	assert.ErrorIs(t, err, ErrReleased)

	// The view keeps the storage alive.
	got, err := v.Get(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	v.Release()
	assert.Equal(t, 0, x.store.refs())
	assert.Nil(t, x.store.data)
	assert.Equal(t, 0, x.store.len())
}

func TestReleasedOperand(t *testing.T) {
	a := mustFromFlat(t, []float64{1, 2}, Shape{2})
	b := mustFromFlat(t, []float64{3, 4}, Shape{2})
	b.Release()

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrReleased)
	_, err = b.Sum()
	assert.ErrorIs(t, err, ErrReleased)
}

func TestConcurrentSetThroughViews(t *testing.T) {
	x := mustFromFlat(t, seq(64), Shape{8, 8})
	top, err := x.Slice([]int{0, 0}, []int{4, 8})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for j := 0; j < 8; j++ {
				assert.NoError(t, top.Set(float64(w), w, j))
			}
		}(w)
		go func() {
			defer wg.Done()
			_, err := x.Add(x)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for w := 0; w < 4; w++ {
		v, err := x.Get(w, 7)
		require.NoError(t, err)
		assert.Equal(t, float64(w), v)
	}
}

func TestString(t *testing.T) {
	x := mustFromFlat(t, seq(6), Shape{2, 3})
	assert.Equal(t, "Tensor[2 3](strides=[3 1], offset=0)", x.String())

	y, err := x.T()
	require.NoError(t, err)
	assert.Equal(t, "View[3 2](strides=[1 3], offset=0)", y.String())
}
