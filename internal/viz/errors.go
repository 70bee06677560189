package viz

import "errors"

// Domain errors for figure and backend operations.
var (
	// ErrFigureClosed indicates use of a figure after Close or Show.
	ErrFigureClosed = errors.New("viz: figure is closed")

	// ErrAxesExists indicates a second AddAxes3D on the same figure.
	ErrAxesExists = errors.New("viz: figure already has axes")

	// ErrNoAxes indicates a figure was shown before axes were attached.
	ErrNoAxes = errors.New("viz: figure has no axes")

	// ErrShapeMismatch indicates a field whose shape differs from its grid.
	ErrShapeMismatch = errors.New("viz: field shape does not match grid")

	// ErrInvalidSize indicates a non-positive or non-finite figure size.
	ErrInvalidSize = errors.New("viz: invalid figure size")

	// ErrUnknownBackend indicates a backend name that is not registered.
	ErrUnknownBackend = errors.New("viz: unknown backend")

	// ErrUnknownColor indicates a color that is neither a known name nor #rrggbb.
	ErrUnknownColor = errors.New("viz: unknown color")
)
