package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/HALLauncher/hal-steam-tools/internal/launch"
	"github.com/HALLauncher/hal-steam-tools/pkg/steampath"
	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools/config"
)

var launchCmd = &cobra.Command{
	Use:   "launch [-- game options...]",
	Short: "Launch the game from its Steam install directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		roots := steampath.DefaultRoots()
		if cfg.SteamRoot != "" {
			roots = []string{cfg.SteamRoot}
		}

		dir, err := steampath.AppInstallDir(cfg.AppID, roots...)
		if err != nil {
			pterm.Error.Printfln("App %d is not installed in any known library", cfg.AppID)
			return err
		}

		if err := launch.Game(dir, cfg.GameExecutable, args...); err != nil {
			pterm.Error.Printfln("Could not start %s: %v", cfg.GameExecutable, err)
			return err
		}

		pterm.Success.Printfln("Started %s from %s", cfg.GameExecutable, dir)
		return nil
	},
}
