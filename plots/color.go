package plots

import (
	"strconv"
	"strings"
)

// backgroundAlpha scales the alpha channel of fill colors so the area under
// a series is lighter than its stroke.
const backgroundAlpha = 0.25

// Color is an RGBA color as supplied by callers. Channels are used as given.
type Color struct {
	R float64 `json:"r" yaml:"r" jsonschema:"description=Red channel"`
	G float64 `json:"g" yaml:"g" jsonschema:"description=Green channel"`
	B float64 `json:"b" yaml:"b" jsonschema:"description=Blue channel"`
	A float64 `json:"a" yaml:"a" jsonschema:"description=Alpha channel"`
}

// FormatColor renders c as "rgba(R, G, B, A)". When background is set the
// alpha channel is multiplied by 0.25. Out of range values are passed through.
func FormatColor(c Color, background bool) string {
	alpha := c.A
	if background {
		alpha = backgroundAlpha * alpha
	}

	var b strings.Builder
	b.WriteString("rgba(")
	b.WriteString(formatNumber(c.R))
	b.WriteString(", ")
	b.WriteString(formatNumber(c.G))
	b.WriteString(", ")
	b.WriteString(formatNumber(c.B))
	b.WriteString(", ")
	b.WriteString(formatNumber(alpha))
	b.WriteString(")")
	return b.String()
}

// formatNumber prints the shortest decimal that round-trips, so 10 stays
// "10" and 0.8 stays "0.8".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
