package einsum

import (
	"fmt"
	"testing"

	"github.com/born-ml/ringtensor/internal/tensor"
)

func BenchmarkEinsum(b *testing.B) {
	for _, n := range []int{8, 32, 64} {
		data := make([]float64, n*n)
		for i := range data {
			data[i] = float64(i % 13)
		}
		m, _ := tensor.FromFlat(data, tensor.Shape{n, n}, f64{})

		b.Run(fmt.Sprintf("MatMul_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = MatMul(m, m)
			}
		})

		b.Run(fmt.Sprintf("Trace_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Trace(m)
			}
		})
	}

	b.Run("Parse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Parse("bij,bjk->bik")
		}
	})
}
