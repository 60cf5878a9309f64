package plots

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i+1)
	}
	return labels
}

func TestNewLineChart(t *testing.T) {
	color := Color{R: 10, G: 20, B: 30, A: 0.8}

	tests := []struct {
		name     string
		data     []float64
		labels   []string
		validate func(t *testing.T, ds *Dataset)
	}{
		{
			name:   "sparse series keeps markers",
			data:   []float64{1, 2, 3},
			labels: xLabels(3),
			validate: func(t *testing.T, ds *Dataset) {
				assert.Nil(t, ds.PointRadius)
				assert.Nil(t, ds.PointHitRadius)
			},
		},
		{
			name:   "exactly at threshold keeps markers",
			data:   make([]float64, 30),
			labels: xLabels(30),
			validate: func(t *testing.T, ds *Dataset) {
				assert.Nil(t, ds.PointRadius)
				assert.Nil(t, ds.PointHitRadius)
			},
		},
		{
			name:   "dense series drops markers",
			data:   make([]float64, 31),
			labels: xLabels(31),
			validate: func(t *testing.T, ds *Dataset) {
				require.NotNil(t, ds.PointRadius)
				require.NotNil(t, ds.PointHitRadius)
				assert.Equal(t, 0.0, *ds.PointRadius)
				assert.Equal(t, 5.0, *ds.PointHitRadius)
			},
		},
		{
			name:   "threshold follows labels not data",
			data:   make([]float64, 3),
			labels: xLabels(31),
			validate: func(t *testing.T, ds *Dataset) {
				require.NotNil(t, ds.PointRadius)
				assert.Equal(t, 0.0, *ds.PointRadius)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := &recordingCanvas{}
			c, err := NewLineChart(cv, tt.data, "Gioia", tt.labels, color)
			require.NoError(t, err)
			assert.Equal(t, 1, cv.draws)

			assert.Equal(t, TypeLine, c.Type)
			assert.Equal(t, tt.labels, c.Data.Labels)
			require.Len(t, c.Data.Datasets, 1)

			ds := c.Data.Datasets[0]
			assert.Equal(t, "Gioia", ds.Label)
			assert.Equal(t, "rgba(10, 20, 30, 0.8)", ds.BorderColor)
			assert.Equal(t, "rgba(10, 20, 30, 0.2)", ds.BackgroundColor)
			assert.Len(t, ds.Data, len(tt.data))
			tt.validate(t, ds)
		})
	}
}

func TestNewLineChartHidesAxes(t *testing.T) {
	c, err := NewLineChart(nil, []float64{1, 2}, "s", xLabels(2), Color{A: 1})
	require.NoError(t, err)

	scales := c.Options["scales"].(map[string]any)
	for _, axis := range []string{"xAxes", "yAxes"} {
		axes := scales[axis].([]map[string]any)
		require.Len(t, axes, 1)
		assert.Equal(t, false, axes[0]["display"], axis)
	}
}

func TestNewLineChartDoesNotAliasInput(t *testing.T) {
	data := []float64{1, 2}
	c, err := NewLineChart(nil, data, "s", xLabels(2), Color{})
	require.NoError(t, err)

	data[0] = 42
	assert.Equal(t, 1.0, *c.Data.Datasets[0].Data[0])
}

func TestDenseLineChartJSON(t *testing.T) {
	c, err := NewLineChart(nil, make([]float64, 31), "Gioia", xLabels(31), Color{A: 1})
	require.NoError(t, err)

	b, err := json.Marshal(c.Data.Datasets[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), `"pointRadius":0,"pointHitRadius":5`)

	sparse, err := NewLineChart(nil, []float64{1}, "Gioia", xLabels(1), Color{A: 1})
	require.NoError(t, err)
	b, err = json.Marshal(sparse.Data.Datasets[0])
	require.NoError(t, err)
	assert.NotContains(t, string(b), "pointRadius")
	assert.NotContains(t, string(b), "pointHitRadius")
}

func TestNewLineChartSeries(t *testing.T) {
	cv := &recordingCanvas{}
	c, err := NewLineChartSeries(cv, xLabels(3),
		LineSeries{Name: "Gioia", Values: []float64{1, 2, 3}, Color: Color{R: 54, G: 162, B: 235, A: 1}},
		LineSeries{Name: "Paura", Values: []float64{3, 2, 1}, Color: Color{R: 255, G: 99, B: 132, A: 1}},
	)
	require.NoError(t, err)

	require.Len(t, c.Data.Datasets, 2)
	assert.Equal(t, "Gioia", c.Data.Datasets[0].Label)
	paura := c.Data.Datasets[1]
	assert.Equal(t, "Paura", paura.Label)
	assert.Equal(t, "rgba(255, 99, 132, 1)", paura.BorderColor)
	assert.Equal(t, "rgba(255, 99, 132, 0.25)", paura.BackgroundColor)
	assert.Equal(t, []int{1, 2}, cv.datasets)

	_, err = NewLineChartSeries(cv, nil)
	assert.ErrorIs(t, err, ErrNoSeries)
}
