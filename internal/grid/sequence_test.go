package grid

import (
	"errors"
	"math"
	"testing"
)

func TestLinspace_Default(t *testing.T) {
	s, err := Linspace(-5, 5, 50)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 50 {
		t.Fatalf("expected 50 samples, got %d", s.Len())
	}
	if s.At(0) != -5.0 {
		t.Errorf("first = %v, want -5", s.At(0))
	}
	if s.At(49) != 5.0 {
		t.Errorf("last = %v, want 5", s.At(49))
	}
	for i := 0; i < s.Len(); i++ {
		want := -5 + float64(i)*(10.0/49.0)
		if math.Abs(s.At(i)-want) > 1e-12 {
			t.Errorf("s[%d] = %v, want %v", i, s.At(i), want)
		}
		if i > 0 && s.At(i) < s.At(i-1) {
			t.Errorf("sequence decreases at %d", i)
		}
	}
	if math.Abs(s.Step()-10.0/49.0) > 1e-15 {
		t.Errorf("step = %v", s.Step())
	}
}

func TestLinspace_Errors(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		n      int
		want   error
	}{
		{"zero samples", -1, 1, 0, ErrTooFewSamples},
		{"one sample", -1, 1, 1, ErrTooFewSamples},
		{"reversed", 1, -1, 10, ErrInvalidRange},
		{"nan", math.NaN(), 1, 10, ErrInvalidRange},
		{"inf", -1, math.Inf(1), 10, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Linspace(tt.lo, tt.hi, tt.n)
			if !errors.Is(err, tt.want) {
				t.Errorf("Linspace() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLinspace_DegenerateRange(t *testing.T) {
	s, err := Linspace(2, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < s.Len(); i++ {
		if s.At(i) != 2 {
			t.Errorf("s[%d] = %v, want 2", i, s.At(i))
		}
	}
}

func TestSequence_ValuesIsCopy(t *testing.T) {
	s, _ := Linspace(0, 1, 3)
	v := s.Values()
	v[0] = 42
	if s.At(0) != 0 {
		t.Error("Values() leaked internal storage")
	}
}

func TestSequence_Nearest(t *testing.T) {
	s, _ := Linspace(-5, 5, 50)
	i := s.Nearest(0)
	if i != 24 && i != 25 {
		t.Errorf("Nearest(0) = %d, want 24 or 25", i)
	}
	if s.Nearest(-100) != 0 || s.Nearest(100) != 49 {
		t.Error("Nearest should clamp to the ends")
	}
}
