package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatpath/config"
)

var (
	logLevel  string
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "heatpath",
	Short: "Cheapest routes across digit grids under run-length limits",
	Long: "heatpath reads a grid of digit costs and finds the cheapest route from the\n" +
		"top-left to the bottom-right cell for a walker that cannot reverse and must\n" +
		"keep each straight run between a minimum and a maximum length.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(configDir); err != nil {
			return err
		}
		// An explicit flag beats the config file.
		if !cmd.Flags().Changed("log-level") {
			logLevel = config.Current().LogLevel
		}

		// Set up zerolog
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		// Parse and set log level
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level '%s', using 'info'\n", logLevel)
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory searched for heatpath.toml")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(solveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
