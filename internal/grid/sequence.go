package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sequence is an evenly spaced, immutable run of samples along one axis.
type Sequence struct {
	lo, hi float64
	vals   []float64
}

// Linspace returns n evenly spaced samples over [lo, hi]. Both endpoints are
// included and the last sample is exactly hi.
func Linspace(lo, hi float64, n int) (Sequence, error) {
	if n < 2 {
		return Sequence{}, fmt.Errorf("%w: got %d", ErrTooFewSamples, n)
	}
	if !finite(lo) || !finite(hi) || lo > hi {
		return Sequence{}, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, lo, hi)
	}
	vals := floats.Span(make([]float64, n), lo, hi)
	vals[n-1] = hi
	return Sequence{lo: lo, hi: hi, vals: vals}, nil
}

func (s Sequence) Len() int          { return len(s.vals) }
func (s Sequence) At(i int) float64  { return s.vals[i] }
func (s Sequence) Step() float64     { return (s.hi - s.lo) / float64(len(s.vals)-1) }
func (s Sequence) Values() []float64 { return append([]float64(nil), s.vals...) }

// Nearest returns the index of the sample closest to v.
func (s Sequence) Nearest(v float64) int {
	best, dist := 0, math.Inf(1)
	for i, x := range s.vals {
		if d := math.Abs(x - v); d < dist {
			best, dist = i, d
		}
	}
	return best
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
