package grid

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Func maps a grid coordinate to a scalar value.
type Func func(x, y float64) float64

// RadialSine is sin(sqrt(x^2 + y^2)).
func RadialSine(x, y float64) float64 {
	return math.Sin(math.Sqrt(x*x + y*y))
}

// Ripple is sin(r)/r, continuous at the origin.
func Ripple(x, y float64) float64 {
	r := math.Sqrt(x*x + y*y)
	if r == 0 {
		return 1
	}
	return math.Sin(r) / r
}

func Saddle(x, y float64) float64 { return x*x - y*y }

func Gaussian(x, y float64) float64 { return math.Exp(-(x*x + y*y) / 2) }

// DefaultFunc is the field function used when none is named.
const DefaultFunc = "radial_sine"

var funcs = map[string]Func{
	"radial_sine": RadialSine,
	"ripple":      Ripple,
	"saddle":      Saddle,
	"gaussian":    Gaussian,
}

// Lookup resolves a registered field function. An empty name yields DefaultFunc.
func Lookup(name string) (Func, error) {
	if name == "" {
		name = DefaultFunc
	}
	fn, ok := funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownFunc, name, Names())
	}
	return fn, nil
}

func Names() []string {
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field holds one scalar per grid position.
type Field struct {
	z *mat.Dense
}

// Evaluate computes fn at every grid position.
func Evaluate(g *Grid, fn Func) *Field {
	r, c := g.Dims()
	z := mat.NewDense(r, c, nil)
	z.Apply(func(i, j int, _ float64) float64 {
		return fn(g.x.At(i, j), g.y.At(i, j))
	}, g.x)
	return &Field{z: z}
}

func (f *Field) Dims() (rows, cols int) { return f.z.Dims() }
func (f *Field) At(i, j int) float64    { return f.z.At(i, j) }

// Row returns a copy of row i.
func (f *Field) Row(i int) []float64 { return mat.Row(nil, i, f.z) }

// Col returns a copy of column j.
func (f *Field) Col(j int) []float64 { return mat.Col(nil, j, f.z) }

// Data returns a row-major copy of all values.
func (f *Field) Data() []float64 {
	r, c := f.z.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		out = append(out, f.Row(i)...)
	}
	return out
}

// Stats summarises the field values.
type Stats struct {
	Min, Max, Mean float64
}

func (f *Field) Stats() Stats {
	data := f.Data()
	return Stats{
		Min:  floats.Min(data),
		Max:  floats.Max(data),
		Mean: floats.Sum(data) / float64(len(data)),
	}
}

// Equal reports whether two fields are bit-identical.
func (f *Field) Equal(o *Field) bool {
	return mat.Equal(f.z, o.z)
}
