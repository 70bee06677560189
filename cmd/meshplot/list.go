package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/meshplot/internal/config"
	"github.com/san-kum/meshplot/internal/grid"
	"github.com/san-kum/meshplot/internal/viz"
)

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFUNCTION\tGRID\tRANGE")
	for _, name := range names {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t[%g, %g]\n",
			name,
			cfg.Grid.Function,
			cfg.Grid.XCount, cfg.Grid.YCount,
			cfg.Grid.XMin, cfg.Grid.XMax,
		)
	}
	return w.Flush()
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return config.Write(cmd.OutOrStdout(), cfg)
}

func listBackends(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "backends:")
	for _, name := range viz.NewRegistry().List() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintln(out, "functions:")
	for _, name := range grid.Names() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintf(out, "themes: %v\n", viz.ThemeNames())
	return nil
}
