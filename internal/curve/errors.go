package curve

import "errors"

var (
	// ErrInvalidOptions indicates a non-positive point or sample count, or
	// more samples than points.
	ErrInvalidOptions = errors.New("curve: invalid sampling options")

	// ErrUnknownCurve indicates a name missing from the registry.
	ErrUnknownCurve = errors.New("curve: unknown curve")

	// ErrUnknownParam indicates a parameter the curve does not have.
	ErrUnknownParam = errors.New("curve: unknown parameter")

	// ErrCanceled indicates sampling was interrupted by its context.
	ErrCanceled = errors.New("curve: sampling canceled by context")
)
