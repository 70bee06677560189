// Package viz renders wireframe meshes of a scalar field over a grid.
//
// A [Figure] owns one 3D [Axes]; callers build geometry with
// [Axes.PlotWireframe], annotate the axes, and hand the figure to [Show]
// together with a [Backend]:
//
//   - png, svg, pdf, eps, jpg, tiff: files drawn through gonum plot
//   - term: braille art on a terminal writer
//   - tui: an interactive bubbletea viewer that blocks until dismissed
//   - none: draws into an in-memory image and discards it
//
// Show always closes the figure, whatever the backend does.
//
// # Viewer Key Bindings
//
//	←↑↓→ / hjkl - rotate azimuth and elevation
//	+ / -       - zoom
//	t           - cycle color themes
//	r           - reset view
//	q / esc     - quit
package viz
