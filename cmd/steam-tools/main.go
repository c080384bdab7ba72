// Command steam-tools is the developer CLI for the HAL workshop adapter:
// it can locate a game's Steam install directory, launch the game, and run
// the adapter's HTTP command surface against a development SDK client.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "steam-tools",
	Short:         "HAL Steam Workshop tools",
	Long:          `steam-tools exposes the HAL launcher's Steam Workshop adapter from the command line: install-path discovery, game launching, and a loopback HTTP server mirroring the shell command surface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
