package plots

import "errors"

// recordingCanvas counts draws and remembers the dataset count of each one.
type recordingCanvas struct {
	draws    int
	datasets []int
	err      error
}

func (r *recordingCanvas) Draw(c *Chart) error {
	r.draws++
	r.datasets = append(r.datasets, len(c.Data.Datasets))
	return r.err
}

var errCanvas = errors.New("canvas gone")

func valuesOf(data []*float64) []any {
	out := make([]any, len(data))
	for i, v := range data {
		if v == nil {
			out[i] = nil
			continue
		}
		out[i] = *v
	}
	return out
}
