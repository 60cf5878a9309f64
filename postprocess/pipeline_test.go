package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelinePrepare(t *testing.T) {
	alternating := []float64{0, 10, 0, 10, 0, 10, 0, 10}

	tests := []struct {
		name     string
		pipeline Pipeline
		in       [][]float64
		validate func(t *testing.T, got [][]float64)
	}{
		{
			name:     "no steps",
			pipeline: Pipeline{},
			in:       [][]float64{{1, 2}, {3, 4}},
			validate: func(t *testing.T, got [][]float64) {
				assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, got)
			},
		},
		{
			name:     "normalizes every series on its own maximum",
			pipeline: Pipeline{Normalize: true},
			in:       [][]float64{{1, 2, 4}, {5, 10, 0}},
			validate: func(t *testing.T, got [][]float64) {
				assert.InDeltaSlice(t, []float64{0.25, 0.5, 1}, got[0], 1e-12)
				assert.InDeltaSlice(t, []float64{0.5, 1, 0}, got[1], 1e-12)
			},
		},
		{
			name:     "smooths to the mean with one harmonic",
			pipeline: Pipeline{Harmonics: 1},
			in:       [][]float64{alternating},
			validate: func(t *testing.T, got [][]float64) {
				for _, v := range got[0] {
					assert.InDelta(t, 5, v, 1e-9)
				}
			},
		},
		{
			name:     "clamps where the raw series is zero",
			pipeline: Pipeline{Harmonics: 1, Clamp: true},
			in:       [][]float64{alternating},
			validate: func(t *testing.T, got [][]float64) {
				for i, v := range got[0] {
					want := 5.0
					if alternating[i] == 0 {
						want = 0
					}
					assert.InDelta(t, want, v, 1e-9, "index %d", i)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pipeline.Prepare(tt.in)
			require.NoError(t, err)
			require.Len(t, got, len(tt.in))
			tt.validate(t, got)
		})
	}
}

func TestPipelinePrepareErrors(t *testing.T) {
	_, err := Pipeline{}.Prepare([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRaggedMatrix)

	got, err := Pipeline{Normalize: true}.Prepare(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPipelinePrepareKeepsInput(t *testing.T) {
	in := [][]float64{{2, 4}}
	_, err := Pipeline{Normalize: true}.Prepare(in)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 4}}, in)
}
