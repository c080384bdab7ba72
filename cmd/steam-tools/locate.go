package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/HALLauncher/hal-steam-tools/pkg/steampath"
	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools/config"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Locate the game's Steam install directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		roots := steampath.DefaultRoots()
		if cfg.SteamRoot != "" {
			roots = []string{cfg.SteamRoot}
		}
		if len(roots) == 0 {
			pterm.Error.Println("No Steam library folders found")
			return fmt.Errorf("no steam library folders")
		}

		dir, err := steampath.AppInstallDir(cfg.AppID, roots...)
		if err != nil {
			pterm.Error.Printfln("App %d is not installed in any known library", cfg.AppID)
			return err
		}

		pterm.Success.Println(dir)
		return nil
	},
}
