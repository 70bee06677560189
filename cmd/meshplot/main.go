package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string
	preset     string
	verbose    bool
	// Render output
	backend string
	outPath string
	theme   string
	// Profile selection
	row int
	col int
	// Export
	exportFormat string
	exportOut    string
)

// main registers the commands and flags and executes the root command, which
// renders the mesh plot. It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:               "meshplot",
		Short:             "render sin(sqrt(x^2+y^2)) as a 3d wireframe mesh",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              runPlot,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.Flags().StringVar(&backend, "backend", "", "output backend (env MESHPLOT_BACKEND)")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file, - for stdout (env MESHPLOT_OUTPUT)")
	rootCmd.Flags().StringVar(&theme, "theme", "", "terminal theme for term/tui (env MESHPLOT_THEME)")

	viper.SetEnvPrefix("MESHPLOT")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("backend", rootCmd.Flags().Lookup("backend"))
	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("theme", rootCmd.Flags().Lookup("theme"))

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot one cross-section of the field",
		Args:  cobra.NoArgs,
		RunE:  runProfile,
	}
	profileCmd.Flags().IntVar(&row, "row", -1, "row index (default: middle row)")
	profileCmd.Flags().IntVar(&col, "col", -1, "column index instead of a row")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "dump grid and field values",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "csv or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "list output backends",
		Args:  cobra.NoArgs,
		RunE:  listBackends,
	}

	rootCmd.AddCommand(profileCmd, exportCmd, presetsCmd, configCmd, backendsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}
