package grid

import "gonum.org/v1/gonum/mat"

// Grid is the outer-product expansion of two sequences. Position (i, j)
// holds x = xs[j] and y = ys[i]; both matrices are ny x nx.
type Grid struct {
	xs, ys Sequence
	x, y   *mat.Dense
}

// Meshgrid expands xs and ys into a coordinate grid.
func Meshgrid(xs, ys Sequence) *Grid {
	nx, ny := xs.Len(), ys.Len()
	x := mat.NewDense(ny, nx, nil)
	y := mat.NewDense(ny, nx, nil)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			x.Set(i, j, xs.At(j))
			y.Set(i, j, ys.At(i))
		}
	}
	return &Grid{xs: xs, ys: ys, x: x, y: y}
}

// Dims returns rows (ny) and columns (nx).
func (g *Grid) Dims() (rows, cols int) { return g.x.Dims() }

func (g *Grid) XAt(i, j int) float64 { return g.x.At(i, j) }
func (g *Grid) YAt(i, j int) float64 { return g.y.At(i, j) }

func (g *Grid) XSeq() Sequence { return g.xs }
func (g *Grid) YSeq() Sequence { return g.ys }
