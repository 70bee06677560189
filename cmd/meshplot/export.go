package main

import (
	"github.com/spf13/cobra"

	"github.com/san-kum/meshplot/internal/export"
	"github.com/san-kum/meshplot/internal/grid"
)

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g, f, err := grid.Generate(cfg.GridSpec())
	if err != nil {
		return err
	}
	return export.Write(cmd.OutOrStdout(), exportOut, exportFormat, cfg.Grid.Function, g, f)
}
