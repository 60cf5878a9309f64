package postprocess

import "fmt"

// Pipeline prepares a set of emotion series for plotting. Steps run in
// order: normalisation, smoothing, clamping.
type Pipeline struct {
	Normalize bool
	// Harmonics kept by the low-pass filter; 0 disables smoothing.
	Harmonics int
	// Clamp zeroes smoothed points whose raw value is not positive.
	Clamp bool
}

// Prepare runs p over series, which must all have the same length. The
// input is not modified.
func (p Pipeline) Prepare(series [][]float64) ([][]float64, error) {
	if len(series) == 0 || len(series[0]) == 0 {
		return series, nil
	}

	m, err := rows(series)
	if err != nil {
		return nil, err
	}
	if p.Normalize {
		if m, err = NormalizeColumns(m); err != nil {
			return nil, err
		}
	}
	if p.Harmonics > 0 {
		if m, err = SmoothColumns(m, p.Harmonics); err != nil {
			return nil, err
		}
	}

	out := columns(m, len(series))
	if p.Clamp {
		for j := range out {
			out[j] = ClampToReference(series[j], out[j])
		}
	}
	return out, nil
}

// rows turns one slice per series into a row-major matrix with one row per
// time point.
func rows(series [][]float64) ([][]float64, error) {
	n := len(series[0])
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, len(series))
	}
	for j, s := range series {
		if len(s) != n {
			return nil, fmt.Errorf("%w: series %d has %d values, want %d", ErrRaggedMatrix, j, len(s), n)
		}
		for i, v := range s {
			m[i][j] = v
		}
	}
	return m, nil
}

func columns(m [][]float64, width int) [][]float64 {
	out := make([][]float64, width)
	for j := range out {
		out[j] = make([]float64, len(m))
		for i := range m {
			out[j][i] = m[i][j]
		}
	}
	return out
}
