package plots

import (
	"fmt"
	"strings"
)

// Language selects the canonical emotion label set.
type Language string

const (
	Italian Language = "italian"
	English Language = "english"
)

// ParseLanguage accepts the full language name or its two letter code.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "it", "italian":
		return Italian, nil
	case "en", "english":
		return English, nil
	}
	return "", fmt.Errorf("unknown language %q: only italian or english", s)
}

// canonical radar ordering per language
var emotionLabels = map[Language][]string{
	Italian: {"Gioia", "Fiducia", "Paura", "Sorpresa",
		"Tristezza", "Disgusto", "Rabbia", "Anticipazione"},
	English: {"Joy", "Trust", "Fear", "Surprise",
		"Sadness", "Disgust", "Anger", "Anticipation"},
}

var intensityLabels = map[Language]string{
	Italian: "Intensità",
	English: "Intensity",
}

// EmotionLabels returns a copy of the canonical label order for lang.
// Unknown languages fall back to Italian.
func EmotionLabels(lang Language) []string {
	labels, ok := emotionLabels[lang]
	if !ok {
		labels = emotionLabels[Italian]
	}
	return append([]string(nil), labels...)
}

// IntensityLabel is the radar series name for lang.
func IntensityLabel(lang Language) string {
	if label, ok := intensityLabels[lang]; ok {
		return label
	}
	return intensityLabels[Italian]
}

// IndexLabels maps every name to its zero-based position in names.
// Duplicates overwrite, so the last occurrence wins.
func IndexLabels(names []string) map[string]int {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return index
}

// align reorders values, indexed by names, into the order of canonical.
// Positions whose label is absent, or whose index has no value, are nil.
// The returned slice lists the canonical labels that could not be resolved.
func align(canonical, names []string, values []float64) ([]*float64, []string) {
	index := IndexLabels(names)

	out := make([]*float64, len(canonical))
	var missing []string
	for i, key := range canonical {
		j, ok := index[key]
		if !ok || j >= len(values) {
			missing = append(missing, key)
			continue
		}
		v := values[j]
		out[i] = &v
	}
	return out, missing
}
