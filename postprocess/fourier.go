package postprocess

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// LowPass keeps the lowest harmonics of signal and discards the rest. The
// first and last harmonics coefficients of the complex spectrum are kept;
// when they cover the whole spectrum the signal is returned unchanged.
func LowPass(signal []float64, harmonics int) ([]float64, error) {
	if harmonics <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHarmonics, harmonics)
	}
	n := len(signal)
	if 2*harmonics >= n {
		return append([]float64(nil), signal...), nil
	}

	seq := make([]complex128, n)
	for i, v := range signal {
		seq[i] = complex(v, 0)
	}

	fft := fourier.NewCmplxFFT(n)
	coeff := fft.Coefficients(nil, seq)
	for k := harmonics; k < n-harmonics; k++ {
		coeff[k] = 0
	}

	// the inverse transform is not normalised
	inv := fft.Sequence(nil, coeff)
	out := make([]float64, n)
	for i, c := range inv {
		out[i] = real(c) / float64(n)
	}
	return out, nil
}
