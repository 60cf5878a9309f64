package plots

import "github.com/sirupsen/logrus"

const (
	DefaultRadarBorderColor = "rgba(162, 210, 255, 1.0)"
	DefaultRadarFillColor   = "rgba(162, 210, 255, 0.4)"
)

type radarConfig struct {
	language Language
	border   string
	fill     string
	strict   bool
}

// RadarOption customises NewRadarChart.
type RadarOption func(*radarConfig)

// WithLanguage selects the canonical label set and series name.
func WithLanguage(lang Language) RadarOption {
	return func(c *radarConfig) { c.language = lang }
}

// WithColors overrides the stroke and fill colors. Empty values keep the default.
func WithColors(border, fill string) RadarOption {
	return func(c *radarConfig) {
		if border != "" {
			c.border = border
		}
		if fill != "" {
			c.fill = fill
		}
	}
}

// WithStrictLabels makes a canonical label absent from the input an error
// instead of a missing value.
func WithStrictLabels() RadarOption {
	return func(c *radarConfig) { c.strict = true }
}

// NewRadarChart realigns values, indexed by names, to the canonical emotion
// order and draws a single series radar chart on cv.
//
// Canonical labels absent from names become nil values in the series unless
// WithStrictLabels is given, in which case a *MissingLabelError is returned.
func NewRadarChart(cv Canvas, names []string, values []float64, opts ...RadarOption) (*Chart, error) {
	cfg := radarConfig{
		language: Italian,
		border:   DefaultRadarBorderColor,
		fill:     DefaultRadarFillColor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	labels := EmotionLabels(cfg.language)
	data, missing := align(labels, names, values)
	if len(missing) > 0 {
		if cfg.strict {
			return nil, &MissingLabelError{Labels: missing}
		}
		logrus.WithField("labels", missing).Debug("canonical emotion labels missing from input")
	}

	return newChart(cv, TypeRadar, Data{
		Labels: labels,
		Datasets: []*Dataset{{
			Label:                IntensityLabel(cfg.language),
			Data:                 data,
			BackgroundColor:      cfg.fill,
			BorderColor:          cfg.border,
			PointBackgroundColor: cfg.border,
		}},
	}, map[string]any{
		"maintainAspectRatio": true,
		"legend": map[string]any{
			"labels": map[string]any{"fontSize": 16},
		},
		"scale": map[string]any{
			"pointLabels": map[string]any{"fontSize": 18},
		},
	})
}
