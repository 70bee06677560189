package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/san-kum/meshplot/internal/grid"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMin       = -5.0
	DefaultMax       = 5.0
	DefaultCount     = 50
	DefaultWidth     = 10.0
	DefaultHeight    = 7.0
	DefaultColor     = "green"
	DefaultLineWidth = 1.0
	DefaultElevation = 30.0
	DefaultAzimuth   = -60.0
	DefaultBackend   = "png"
)

// DefaultOutputStem names file output when no path is set: mesh.<backend>.
const DefaultOutputStem = "mesh"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Figure FigureConfig `yaml:"figure"`
	Style  StyleConfig  `yaml:"style"`
	Labels LabelConfig  `yaml:"labels"`
	View   ViewConfig   `yaml:"view"`
	Output OutputConfig `yaml:"output"`
}

type GridConfig struct {
	XMin     float64 `yaml:"x_min"`
	XMax     float64 `yaml:"x_max"`
	XCount   int     `yaml:"x_count"`
	YMin     float64 `yaml:"y_min"`
	YMax     float64 `yaml:"y_max"`
	YCount   int     `yaml:"y_count"`
	Function string  `yaml:"function"`
}

// FigureConfig sizes are in inches.
type FigureConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type StyleConfig struct {
	Color     string  `yaml:"color"`
	LineWidth float64 `yaml:"line_width"`
	RowStride int     `yaml:"row_stride"`
	ColStride int     `yaml:"col_stride"`
}

type LabelConfig struct {
	Title string `yaml:"title"`
	X     string `yaml:"x"`
	Y     string `yaml:"y"`
	Z     string `yaml:"z"`
}

// ViewConfig angles are in degrees.
type ViewConfig struct {
	Elevation float64 `yaml:"elevation"`
	Azimuth   float64 `yaml:"azimuth"`
	Zoom      float64 `yaml:"zoom"`
}

type OutputConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			XMin: DefaultMin, XMax: DefaultMax, XCount: DefaultCount,
			YMin: DefaultMin, YMax: DefaultMax, YCount: DefaultCount,
			Function: grid.DefaultFunc,
		},
		Figure: FigureConfig{Width: DefaultWidth, Height: DefaultHeight},
		Style:  StyleConfig{Color: DefaultColor, LineWidth: DefaultLineWidth, RowStride: 1, ColStride: 1},
		Labels: LabelConfig{Title: "3D Mesh Plot", X: "X axis", Y: "Y axis", Z: "Z axis"},
		View:   ViewConfig{Elevation: DefaultElevation, Azimuth: DefaultAzimuth, Zoom: 1},
		Output: OutputConfig{Backend: DefaultBackend},
	}
}

// Load reads a YAML file on top of DefaultConfig.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := Apply(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply overlays the YAML file at path onto cfg; keys absent from the file
// keep their current values.
func Apply(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Write encodes cfg as YAML to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks ranges and sizes before any work is done.
func (c *Config) Validate() error {
	switch {
	case c.Grid.XCount < 2 || c.Grid.YCount < 2:
		return fmt.Errorf("%w: grid counts must be >= 2 (got %d, %d)", ErrInvalid, c.Grid.XCount, c.Grid.YCount)
	case c.Grid.XMin > c.Grid.XMax || c.Grid.YMin > c.Grid.YMax:
		return fmt.Errorf("%w: grid min exceeds max", ErrInvalid)
	case !(c.Figure.Width > 0) || !(c.Figure.Height > 0) || math.IsInf(c.Figure.Width, 0) || math.IsInf(c.Figure.Height, 0):
		return fmt.Errorf("%w: figure size %gx%g", ErrInvalid, c.Figure.Width, c.Figure.Height)
	case c.Style.LineWidth < 0:
		return fmt.Errorf("%w: negative line width", ErrInvalid)
	case c.Style.RowStride < 1 || c.Style.ColStride < 1:
		return fmt.Errorf("%w: strides must be >= 1", ErrInvalid)
	case !(c.View.Zoom > 0):
		return fmt.Errorf("%w: zoom must be positive", ErrInvalid)
	}
	if _, err := grid.Lookup(c.Grid.Function); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// GridSpec converts the grid section for grid.Generate.
func (c *Config) GridSpec() grid.Spec {
	return grid.Spec{
		XMin: c.Grid.XMin, XMax: c.Grid.XMax, XCount: c.Grid.XCount,
		YMin: c.Grid.YMin, YMax: c.Grid.YMax, YCount: c.Grid.YCount,
		Func: c.Grid.Function,
	}
}
