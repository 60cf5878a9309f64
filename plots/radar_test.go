package plots

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRadarChart(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		values   []float64
		opts     []RadarOption
		validate func(t *testing.T, c *Chart)
	}{
		{
			name:   "reorders into canonical order",
			names:  []string{"Fiducia", "Gioia"},
			values: []float64{5, 9},
			validate: func(t *testing.T, c *Chart) {
				require.Len(t, c.Data.Datasets, 1)
				data := c.Data.Datasets[0].Data
				require.Len(t, data, 8)
				assert.Equal(t, []any{9.0, 5.0, nil, nil, nil, nil, nil, nil}, valuesOf(data))
			},
		},
		{
			name: "full input in reverse order",
			names: []string{"Anticipazione", "Rabbia", "Disgusto", "Tristezza",
				"Sorpresa", "Paura", "Fiducia", "Gioia"},
			values: []float64{8, 7, 6, 5, 4, 3, 2, 1},
			validate: func(t *testing.T, c *Chart) {
				assert.Equal(t, []any{1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0},
					valuesOf(c.Data.Datasets[0].Data))
			},
		},
		{
			name:   "index beyond values is missing",
			names:  []string{"Paura", "Gioia"},
			values: []float64{3},
			validate: func(t *testing.T, c *Chart) {
				data := valuesOf(c.Data.Datasets[0].Data)
				assert.Nil(t, data[0])
				assert.Equal(t, 3.0, data[2])
			},
		},
		{
			name:   "unknown names are ignored",
			names:  []string{"Noia", "Gioia"},
			values: []float64{100, 1},
			validate: func(t *testing.T, c *Chart) {
				assert.Equal(t, 1.0, *c.Data.Datasets[0].Data[0])
				assert.NotContains(t, c.Data.Labels, "Noia")
			},
		},
		{
			name:   "style and labels",
			names:  []string{"Gioia"},
			values: []float64{1},
			validate: func(t *testing.T, c *Chart) {
				assert.Equal(t, TypeRadar, c.Type)
				assert.Equal(t, EmotionLabels(Italian), c.Data.Labels)
				ds := c.Data.Datasets[0]
				assert.Equal(t, "Intensità", ds.Label)
				assert.Equal(t, DefaultRadarBorderColor, ds.BorderColor)
				assert.Equal(t, DefaultRadarFillColor, ds.BackgroundColor)
				assert.Equal(t, DefaultRadarBorderColor, ds.PointBackgroundColor)
				assert.Nil(t, ds.PointRadius)
				assert.Equal(t, true, c.Options["maintainAspectRatio"])
			},
		},
		{
			name:   "english labels and custom colors",
			names:  []string{"Trust", "Joy"},
			values: []float64{2, 4},
			opts: []RadarOption{
				WithLanguage(English),
				WithColors("rgba(1, 2, 3, 1)", ""),
			},
			validate: func(t *testing.T, c *Chart) {
				assert.Equal(t, "Joy", c.Data.Labels[0])
				assert.Equal(t, "Intensity", c.Data.Datasets[0].Label)
				assert.Equal(t, 4.0, *c.Data.Datasets[0].Data[0])
				assert.Equal(t, 2.0, *c.Data.Datasets[0].Data[1])
				assert.Equal(t, "rgba(1, 2, 3, 1)", c.Data.Datasets[0].BorderColor)
				assert.Equal(t, DefaultRadarFillColor, c.Data.Datasets[0].BackgroundColor)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := &recordingCanvas{}
			c, err := NewRadarChart(cv, tt.names, tt.values, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, 1, cv.draws)
			assert.Equal(t, len(c.Data.Labels), len(c.Data.Datasets[0].Data))
			tt.validate(t, c)
		})
	}
}

func TestNewRadarChartStrict(t *testing.T) {
	_, err := NewRadarChart(nil, []string{"Gioia", "Fiducia"}, []float64{1, 2}, WithStrictLabels())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingLabel))

	var missing *MissingLabelError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"Paura", "Sorpresa", "Tristezza", "Disgusto", "Rabbia", "Anticipazione"}, missing.Labels)

	c, err := NewRadarChart(nil, EmotionLabels(Italian), make([]float64, 8), WithStrictLabels())
	require.NoError(t, err)
	assert.Len(t, c.Data.Datasets[0].Data, 8)
}

func TestNewRadarChartDrawError(t *testing.T) {
	c, err := NewRadarChart(&recordingCanvas{err: errCanvas}, nil, nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, errCanvas)
}

func TestRadarChartJSON(t *testing.T) {
	c, err := NewRadarChart(nil, []string{"Gioia"}, []float64{0.5})
	require.NoError(t, err)

	b, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "radar", decoded["type"])

	data := decoded["data"].(map[string]any)
	datasets := data["datasets"].([]any)
	first := datasets[0].(map[string]any)
	values := first["data"].([]any)
	assert.Equal(t, 0.5, values[0])
	assert.Nil(t, values[1])
	assert.NotContains(t, first, "pointRadius")
}
