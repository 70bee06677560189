package grid

// Spec describes a grid and the function evaluated over it.
type Spec struct {
	XMin, XMax float64
	XCount     int
	YMin, YMax float64
	YCount     int
	Func       string
}

// DefaultSpec is a 50x50 grid over [-5, 5] with the radial sine field.
func DefaultSpec() Spec {
	return Spec{
		XMin: -5, XMax: 5, XCount: 50,
		YMin: -5, YMax: 5, YCount: 50,
		Func: DefaultFunc,
	}
}

// Generate builds the sequences, expands them and evaluates the field.
func Generate(s Spec) (*Grid, *Field, error) {
	fn, err := Lookup(s.Func)
	if err != nil {
		return nil, nil, err
	}
	xs, err := Linspace(s.XMin, s.XMax, s.XCount)
	if err != nil {
		return nil, nil, err
	}
	ys, err := Linspace(s.YMin, s.YMax, s.YCount)
	if err != nil {
		return nil, nil, err
	}
	g := Meshgrid(xs, ys)
	return g, Evaluate(g, fn), nil
}
