package grid

import "errors"

// Domain errors for grid construction.
var (
	// ErrTooFewSamples indicates a sequence was requested with fewer than two samples.
	ErrTooFewSamples = errors.New("grid: at least two samples required")

	// ErrInvalidRange indicates a NaN/Inf bound or a lower bound above the upper one.
	ErrInvalidRange = errors.New("grid: invalid range")

	// ErrUnknownFunc indicates a field function name that is not registered.
	ErrUnknownFunc = errors.New("grid: unknown field function")
)
