package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/meshplot/internal/grid"
)

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g, f, err := grid.Generate(cfg.GridSpec())
	if err != nil {
		return err
	}

	data, caption, err := crossSection(g, f, row, col)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)

	st := f.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "\nfield min %.4f  max %.4f  mean %.4f\n", st.Min, st.Max, st.Mean)
	return nil
}

// crossSection picks a column when c >= 0, otherwise row r (the middle row when r < 0).
func crossSection(g *grid.Grid, f *grid.Field, r, c int) ([]float64, string, error) {
	rows, cols := f.Dims()
	if c >= 0 {
		if c >= cols {
			return nil, "", fmt.Errorf("column %d out of range [0, %d)", c, cols)
		}
		return f.Col(c), fmt.Sprintf("z along y at x = %.3f", g.XSeq().At(c)), nil
	}
	if r < 0 {
		r = rows / 2
	}
	if r >= rows {
		return nil, "", fmt.Errorf("row %d out of range [0, %d)", r, rows)
	}
	return f.Row(r), fmt.Sprintf("z along x at y = %.3f", g.YSeq().At(r)), nil
}
