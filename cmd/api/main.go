package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	servePort  string
)

var rootCmd = &cobra.Command{
	Use:   "qlab",
	Short: "Quantum circuit lab: build small circuits, derive their state and sample measurements",
	// the bare binary starts the API server
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file (default $QLAB_CONFIG)")
	// persistent so the bare binary, which also serves, accepts it
	rootCmd.PersistentFlags().StringVar(&servePort, "port", "", "listen port (overrides config and $PORT)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
