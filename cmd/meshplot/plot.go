package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/san-kum/meshplot/internal/config"
	"github.com/san-kum/meshplot/internal/grid"
	"github.com/san-kum/meshplot/internal/viz"
)

// loadConfig layers default < preset < config file < env < flags.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		if err := config.Apply(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		log.WithField("path", configFile).Debug("loaded config file")
	}

	viper.SetDefault("backend", cfg.Output.Backend)
	viper.SetDefault("output", cfg.Output.Path)
	cfg.Output.Backend = viper.GetString("backend")
	cfg.Output.Path = viper.GetString("output")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// outputPath resolves where a file backend writes; "" means the command's stdout.
func outputPath(cfg *config.Config) string {
	switch cfg.Output.Path {
	case "-":
		return ""
	case "":
		return config.DefaultOutputStem + "." + cfg.Output.Backend
	default:
		return cfg.Output.Path
	}
}

// buildFigure creates the figure, its single 3D axes, the wireframe and the
// annotations described by cfg.
func buildFigure(cfg *config.Config, g *grid.Grid, f *grid.Field) (*viz.Figure, error) {
	color, err := viz.ParseColor(cfg.Style.Color)
	if err != nil {
		return nil, err
	}
	fig, err := viz.NewFigure(cfg.Figure.Width, cfg.Figure.Height)
	if err != nil {
		return nil, err
	}
	ax, err := fig.AddAxes3D()
	if err != nil {
		fig.Close()
		return nil, err
	}
	_, err = ax.PlotWireframe(g, f,
		viz.WithColor(color),
		viz.WithLineWidth(cfg.Style.LineWidth),
		viz.WithStride(cfg.Style.RowStride, cfg.Style.ColStride),
	)
	if err != nil {
		fig.Close()
		return nil, err
	}

	ax.SetTitle(cfg.Labels.Title)
	ax.SetXLabel(cfg.Labels.X)
	ax.SetYLabel(cfg.Labels.Y)
	ax.SetZLabel(cfg.Labels.Z)
	ax.SetView(cfg.View.Elevation, cfg.View.Azimuth)
	ax.Zoom = cfg.View.Zoom
	return fig, nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	g, f, err := grid.Generate(cfg.GridSpec())
	if err != nil {
		return err
	}
	ny, nx := f.Dims()
	log.WithFields(log.Fields{"nx": nx, "ny": ny, "function": cfg.Grid.Function}).Debug("generated field")

	fig, err := buildFigure(cfg, g, f)
	if err != nil {
		return err
	}

	b, err := viz.NewRegistry().Get(cfg.Output.Backend, viz.Options{
		Path:  outputPath(cfg),
		Out:   cmd.OutOrStdout(),
		Theme: viper.GetString("theme"),
	})
	if err != nil {
		fig.Close()
		return err
	}
	return viz.Show(fig, b)
}
