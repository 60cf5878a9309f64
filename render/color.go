package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ParseRGBA parses the "rgba(R, G, B, A)" and "rgb(R, G, B)" strings produced
// by plots.FormatColor. Channels are clamped to 0-255; an alpha up to 1 is
// read as a fraction, anything larger as a 0-255 value.
func ParseRGBA(s string) (drawing.Color, error) {
	s = strings.TrimSpace(s)
	var body string
	var want int
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body, want = s[len("rgba("):len(s)-1], 4
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body, want = s[len("rgb("):len(s)-1], 3
	default:
		return drawing.Color{}, fmt.Errorf("parse color %q: not an rgb or rgba value", s)
	}

	parts := strings.Split(body, ",")
	if len(parts) != want {
		return drawing.Color{}, fmt.Errorf("parse color %q: want %d channels, got %d", s, want, len(parts))
	}

	channels := make([]float64, 4)
	channels[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return drawing.Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		channels[i] = v
	}

	alpha := channels[3]
	if alpha <= 1 {
		alpha *= 255
	}
	return drawing.Color{
		R: clampByte(channels[0]),
		G: clampByte(channels[1]),
		B: clampByte(channels[2]),
		A: clampByte(alpha),
	}, nil
}

func clampByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
