package fastplot

import (
	"errors"
	"fmt"
)

// Error kinds raised at graphic construction. All are returned
// synchronously from constructors; a failed construction leaves nothing
// registered with the plot.
var (
	// ErrConfig is returned for ambiguous or contradictory color
	// specifications, e.g. explicit RGBA colors combined with a colormap.
	ErrConfig = errors.New("fastplot: conflicting configuration")

	// ErrValidation is returned for inputs of the wrong shape or type,
	// e.g. an explicit color array whose row count does not match the
	// datapoint count.
	ErrValidation = errors.New("fastplot: invalid input")

	// ErrUnknownColorFormat is returned when a ColorSpec cannot be
	// interpreted under any resolution rule.
	ErrUnknownColorFormat = fmt.Errorf("%w: unknown color format", ErrConfig)
)

// ShapeError reports an array whose shape differs from the required one.
// It wraps ErrValidation so callers can match with errors.Is.
type ShapeError struct {
	What               string // what the array holds, e.g. "colors"
	GotRows, GotCols   int
	WantRows, WantCols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("fastplot: %s must have shape (%d, %d), got (%d, %d)",
		e.What, e.WantRows, e.WantCols, e.GotRows, e.GotCols)
}

func (e *ShapeError) Unwrap() error { return ErrValidation }
