package render

import (
	"bytes"
	"encoding/json"

	"github.com/mikills/tinkerings/emoplot/plots"
)

// JSON hands the Chart.js configuration of every drawn frame to a sink.
type JSON struct {
	sink   Sink
	pretty bool
}

func NewJSON(sink Sink, pretty bool) *JSON {
	return &JSON{sink: sink, pretty: pretty}
}

func (j *JSON) Draw(c *plots.Chart) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if j.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(c); err != nil {
		return err
	}
	return j.sink.WriteFrame(buf.Bytes())
}
