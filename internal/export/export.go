package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/meshplot/internal/grid"
)

// Formats lists the supported dump formats.
var Formats = []string{"csv", "json"}

type FieldData struct {
	Function string      `json:"function"`
	NX       int         `json:"nx"`
	NY       int         `json:"ny"`
	X        []float64   `json:"x"`
	Y        []float64   `json:"y"`
	Z        [][]float64 `json:"z"`
}

func NewFieldData(function string, g *grid.Grid, f *grid.Field) FieldData {
	ny, nx := f.Dims()
	data := FieldData{
		Function: function,
		NX:       nx,
		NY:       ny,
		X:        g.XSeq().Values(),
		Y:        g.YSeq().Values(),
		Z:        make([][]float64, ny),
	}
	for i := range data.Z {
		data.Z[i] = f.Row(i)
	}
	return data
}

// WriteCSV writes one x,y,z row per grid position in row-major order.
func WriteCSV(w io.Writer, g *grid.Grid, f *grid.Field) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	rows, cols := f.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			rec := []string{
				strconv.FormatFloat(g.XAt(i, j), 'g', -1, 64),
				strconv.FormatFloat(g.YAt(i, j), 'g', -1, 64),
				strconv.FormatFloat(f.At(i, j), 'g', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, function string, g *grid.Grid, f *grid.Field) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewFieldData(function, g, f))
}

var writers = map[string]func(w io.Writer, function string, g *grid.Grid, f *grid.Field) error{
	"csv": func(w io.Writer, _ string, g *grid.Grid, f *grid.Field) error {
		return WriteCSV(w, g, f)
	},
	"json": WriteJSON,
}

// Write dumps in format to path, or to w when path is empty. An unknown
// format fails before path is touched.
func Write(w io.Writer, path, format, function string, g *grid.Grid, f *grid.Field) error {
	write, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown export format: %s (available: %v)", format, Formats)
	}
	if path == "" {
		return write(w, function, g, f)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(file, function, g, f)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}
