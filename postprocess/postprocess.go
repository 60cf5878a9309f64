// Package postprocess prepares emotion series for plotting: max
// normalisation and Fourier low-pass smoothing.
package postprocess

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHarmonics is returned for a non-positive harmonic count.
	ErrInvalidHarmonics = errors.New("number of harmonics must be positive")
	// ErrRaggedMatrix is returned when matrix rows differ in length.
	ErrRaggedMatrix = errors.New("matrix rows have different lengths")
)

// Normalize divides v by its maximum. An empty series, or one whose maximum
// is zero, is returned as a copy without scaling.
func Normalize(v []float64) []float64 {
	out := append([]float64(nil), v...)
	if len(out) == 0 {
		return out
	}
	top := out[0]
	for _, x := range out[1:] {
		if x > top {
			top = x
		}
	}
	if top == 0 {
		return out
	}
	for i := range out {
		out[i] /= top
	}
	return out
}

// NormalizeColumns normalises each column of the row-major matrix m, where
// rows are time points and columns emotions.
func NormalizeColumns(m [][]float64) ([][]float64, error) {
	return mapColumns(m, func(col []float64) ([]float64, error) {
		return Normalize(col), nil
	})
}

// SmoothColumns applies LowPass to every column of m.
func SmoothColumns(m [][]float64, harmonics int) ([][]float64, error) {
	return mapColumns(m, func(col []float64) ([]float64, error) {
		return LowPass(col, harmonics)
	})
}

// ClampToReference zeroes v[i] wherever ref[i] is not positive. Positions
// past the end of ref are kept.
func ClampToReference(ref, v []float64) []float64 {
	out := append([]float64(nil), v...)
	for i := range out {
		if i < len(ref) && ref[i] <= 0 {
			out[i] = 0
		}
	}
	return out
}

func mapColumns(m [][]float64, fn func([]float64) ([]float64, error)) ([][]float64, error) {
	if len(m) == 0 {
		return nil, nil
	}
	width := len(m[0])
	for i, row := range m {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedMatrix, i, len(row), width)
		}
	}

	out := make([][]float64, len(m))
	for i := range out {
		out[i] = make([]float64, width)
	}
	col := make([]float64, len(m))
	for j := 0; j < width; j++ {
		for i := range m {
			col[i] = m[i][j]
		}
		res, err := fn(col)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", j, err)
		}
		for i := range out {
			out[i][j] = res[i]
		}
	}
	return out, nil
}
