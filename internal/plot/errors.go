package plot

import "errors"

var (
	// ErrUnsupportedFormat indicates an output extension with no sink.
	ErrUnsupportedFormat = errors.New("plot: unsupported output format")

	// ErrInvalidColor indicates a color that is not #rrggbb.
	ErrInvalidColor = errors.New("plot: invalid color (want #rrggbb)")

	// ErrInvalidSize indicates a non-positive image width or height.
	ErrInvalidSize = errors.New("plot: invalid image size")

	// ErrEmpty indicates Save was called before anything was drawn.
	ErrEmpty = errors.New("plot: nothing to draw")
)
