// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wheeltag/internal/config"
)

// newConfigCommand creates the `wheeltag config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage wheeltag configuration",
		Long: `Manage wheeltag configuration.

Configuration is stored in:
  - Linux: ~/.config/wheeltag/config.toml
  - macOS: ~/Library/Application Support/wheeltag/config.toml
  - Windows: %APPDATA%\wheeltag\config.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			showValue := func(key, val string) {
				if val == "" {
					val = SubtitleStyle.Render("(unset)")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, val)
			}
			showValue("implementation", cfg.Implementation)
			showValue("python_version", cfg.PythonVersion)
			showValue("abi", cfg.ABI)
			showValue("platform", cfg.Platform)
			showValue("log_level", cfg.LogLevel)
			for name, val := range cfg.ConfigVars {
				fmt.Fprintf(cmd.OutOrStdout(), "config_vars.%s: %s\n", name, val)
			}
			return nil
		},
	})

	return cfgCmd
}
