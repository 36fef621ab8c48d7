package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antflow/logging"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "antflow",
		Short: "Ant colony simulator for multi-commodity flow on layered networks",
		Long: `antflow routes a colony of ants carrying commodity packages from source to
sink across a layered network. Arc capacity limits every epoch; pheromone
laid on cheap paths biases later epochs toward them.

Inputs are a flat KEY VALUE configuration (or YAML), an arc list and a
supply list. 'antflow generate' synthesizes the latter two.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level: info, verbose, debug or trace")
	rootCmd.PersistentFlags().Bool("log-dev", false, "Human-readable development logs")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newGenerateCmd(),
		newValidateCmd(),
	)
	return rootCmd
}

// loggerFromFlags builds the logger selected by the persistent flags.
func loggerFromFlags(cmd *cobra.Command) (logr.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	dev, _ := cmd.Flags().GetBool("log-dev")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return logr.Discard(), err
	}
	return logging.NewLogger(level, dev)
}
