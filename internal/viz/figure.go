package viz

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/meshplot/internal/grid"
)

// zAspect is the half-height of the normalised box; x and y span [-1, 1].
const zAspect = 0.75

// Figure is a drawing surface of fixed physical size (inches) owning one 3D Axes.
// There is no implicit current figure: callers hold the handle and pass it to Show.
type Figure struct {
	Width, Height float64

	axes   *Axes
	closed bool
}

func NewFigure(width, height float64) (*Figure, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidSize, width, height)
	}
	return &Figure{Width: width, Height: height}, nil
}

// AddAxes3D attaches the single 3D axes covering the whole figure.
func (f *Figure) AddAxes3D() (*Axes, error) {
	if f.closed {
		return nil, ErrFigureClosed
	}
	if f.axes != nil {
		return nil, ErrAxesExists
	}
	f.axes = &Axes{Elevation: 30, Azimuth: -60, Zoom: 1}
	return f.axes, nil
}

func (f *Figure) Axes() *Axes { return f.axes }

func (f *Figure) Closed() bool { return f.closed }

// Close releases the geometry held by the figure. It is safe to call more than once.
func (f *Figure) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if f.axes != nil {
		f.axes.meshes = nil
	}
	return nil
}

// Axes holds wireframe meshes, annotations and the view angles (degrees).
type Axes struct {
	Title, XLabel, YLabel, ZLabel string
	Elevation, Azimuth, Zoom      float64

	meshes []*Mesh
}

func (a *Axes) SetTitle(s string)  { a.Title = s }
func (a *Axes) SetXLabel(s string) { a.XLabel = s }
func (a *Axes) SetYLabel(s string) { a.YLabel = s }
func (a *Axes) SetZLabel(s string) { a.ZLabel = s }

func (a *Axes) SetView(elev, azim float64) {
	a.Elevation, a.Azimuth = elev, azim
}

func (a *Axes) Meshes() []*Mesh { return a.meshes }

// Camera returns a camera positioned at the axes view.
func (a *Axes) Camera() *Camera {
	return NewCamera(a.Elevation, a.Azimuth, a.Zoom)
}

// Mesh is wireframe geometry over a rows x cols lattice of points.
type Mesh struct {
	Points               [][]Vec3
	Color                color.RGBA
	LineWidth            float64
	RowStride, ColStride int
}

type MeshOption func(*Mesh)

func WithColor(c color.RGBA) MeshOption  { return func(m *Mesh) { m.Color = c } }
func WithLineWidth(w float64) MeshOption { return func(m *Mesh) { m.LineWidth = w } }

func WithStride(rows, cols int) MeshOption {
	return func(m *Mesh) {
		if rows > 0 {
			m.RowStride = rows
		}
		if cols > 0 {
			m.ColStride = cols
		}
	}
}

// PlotWireframe adds a mesh joining neighbouring grid points along both axes.
func (a *Axes) PlotWireframe(g *grid.Grid, f *grid.Field, opts ...MeshOption) (*Mesh, error) {
	gr, gc := g.Dims()
	fr, fc := f.Dims()
	if gr != fr || gc != fc {
		return nil, fmt.Errorf("%w: grid %dx%d, field %dx%d", ErrShapeMismatch, gr, gc, fr, fc)
	}

	m := &Mesh{
		Points:    make([][]Vec3, gr),
		Color:     namedColors["green"],
		LineWidth: 1,
		RowStride: 1,
		ColStride: 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	for i := 0; i < gr; i++ {
		m.Points[i] = make([]Vec3, gc)
		for j := 0; j < gc; j++ {
			m.Points[i][j] = Vec3{g.XAt(i, j), g.YAt(i, j), f.At(i, j)}
		}
	}
	a.meshes = append(a.meshes, m)
	return m, nil
}

// strideIndices returns 0, s, 2s, ... and always the last index.
func strideIndices(n, s int) []int {
	if n == 0 {
		return nil
	}
	if s < 1 {
		s = 1
	}
	idx := make([]int, 0, n/s+2)
	for k := 0; k < n; k += s {
		idx = append(idx, k)
	}
	if idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}
	return idx
}

// Polylines returns the row lines followed by the column lines.
func (m *Mesh) Polylines() [][]Vec3 {
	rows := len(m.Points)
	if rows == 0 {
		return nil
	}
	cols := len(m.Points[0])
	var out [][]Vec3
	for _, i := range strideIndices(rows, m.RowStride) {
		out = append(out, m.Points[i])
	}
	for _, j := range strideIndices(cols, m.ColStride) {
		line := make([]Vec3, rows)
		for i := 0; i < rows; i++ {
			line[i] = m.Points[i][j]
		}
		out = append(out, line)
	}
	return out
}

// Bounds is the data-space bounding box of all meshes.
func (a *Axes) Bounds() (lo, hi Vec3) {
	lo = Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, m := range a.meshes {
		for _, row := range m.Points {
			for _, p := range row {
				lo = Vec3{math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z)}
				hi = Vec3{math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z)}
			}
		}
	}
	return lo, hi
}

// normalizer maps data space into the box [-1,1]x[-1,1]x[-zAspect,zAspect].
type normalizer struct{ lo, hi Vec3 }

func norm1(v, lo, hi, half float64) float64 {
	if hi <= lo {
		return 0
	}
	return ((v-lo)/(hi-lo)*2 - 1) * half
}

func (n normalizer) apply(p Vec3) Vec3 {
	return Vec3{
		norm1(p.X, n.lo.X, n.hi.X, 1),
		norm1(p.Y, n.lo.Y, n.hi.Y, 1),
		norm1(p.Z, n.lo.Z, n.hi.Z, zAspect),
	}
}

// NormalizedPolylines returns every mesh's polylines in normalised box space,
// paired with the owning mesh.
func (a *Axes) NormalizedPolylines() ([][]Vec3, []*Mesh) {
	lo, hi := a.Bounds()
	n := normalizer{lo, hi}
	var lines [][]Vec3
	var owners []*Mesh
	for _, m := range a.meshes {
		for _, pl := range m.Polylines() {
			out := make([]Vec3, len(pl))
			for k, p := range pl {
				out[k] = n.apply(p)
			}
			lines = append(lines, out)
			owners = append(owners, m)
		}
	}
	return lines, owners
}

// Wireframe flattens the axes into normalised edges for the braille renderers.
func (a *Axes) Wireframe() *Wireframe {
	w := NewWireframe()
	lines, _ := a.NormalizedPolylines()
	for _, pl := range lines {
		w.AddPolyline(pl)
	}
	return w
}
