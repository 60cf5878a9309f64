package plots

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingLabel reports a canonical label absent from the input names.
	ErrMissingLabel = errors.New("missing canonical label")
	// ErrNoSeries is returned when a multi-series chart gets no series.
	ErrNoSeries = errors.New("no series to plot")
)

// MissingLabelError lists the canonical labels a strict radar build could not
// find in its input.
type MissingLabelError struct {
	Labels []string
}

func (e *MissingLabelError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingLabel, strings.Join(e.Labels, ", "))
}

func (e *MissingLabelError) Unwrap() error {
	return ErrMissingLabel
}
