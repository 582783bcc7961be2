package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/ringtensor/algebra"
	"github.com/born-ml/ringtensor/tensor"
)

var errRagged = errors.New("ragged nested array")

// parseTensor reads a JSON number or rectangular nested array of numbers.
func parseTensor(raw string) (*tensor.Tensor[float64, algebra.Float64], error) {
	var v any
	dec := json.NewDecoder(strings.NewReader(raw))
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode %q: %w", raw, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode %q: trailing data", raw)
	}

	var shape tensor.Shape
	for level := v; ; {
		arr, ok := level.([]any)
		if !ok {
			break
		}
		if len(arr) == 0 {
			return nil, fmt.Errorf("%w: empty array in %q", tensor.ErrInvalidShape, raw)
		}
		shape = append(shape, len(arr))
		level = arr[0]
	}

	data := make([]float64, 0, shape.NumElements())
	data, err := flatten(v, shape, data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", raw, err)
	}
	return tensor.FromFlat(data, shape, algebra.Float64{})
}

func flatten(v any, shape tensor.Shape, out []float64) ([]float64, error) {
	if len(shape) == 0 {
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: expected a number, got %T", errRagged, v)
		}
		return append(out, f), nil
	}
	arr, ok := v.([]any)
	if !ok || len(arr) != shape[0] {
		return nil, fmt.Errorf("%w: expected %d elements", errRagged, shape[0])
	}
	var err error
	for _, e := range arr {
		if out, err = flatten(e, shape[1:], out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func writeTensor(w io.Writer, t *tensor.Tensor[float64, algebra.Float64]) error {
	nested, err := t.ToNested()
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(nested)
}
