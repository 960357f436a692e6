package life

import (
	"errors"
	"fmt"
)

// Domain errors for grid construction.
var (
	// ErrInvalidDimensions indicates a non-positive extent or cell size, or an
	// extent smaller than a single cell.
	ErrInvalidDimensions = errors.New("life: invalid grid dimensions")

	// ErrUnknownPalette indicates a palette name with no registered factory.
	ErrUnknownPalette = errors.New("life: unknown palette")

	// ErrEmptyPattern indicates a pattern with no cell rows.
	ErrEmptyPattern = errors.New("life: empty pattern")
)

// ConfigError wraps a construction error with the offending configuration.
type ConfigError struct {
	Width    int
	Height   int
	CellSize int
	Wrapped  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v (width=%d height=%d cell_size=%d)", e.Wrapped, e.Width, e.Height, e.CellSize)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
