// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// platformCmd explains platform detection: the derived identity and the
// ordered compatibility expansion the tag sequence is built from.
var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show the detected platform and its compatibility expansion",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)
		env := buildEnvironment(cfg, logger)

		identity := env.Platform()
		fmt.Fprintln(cmd.OutOrStdout(), TitleStyle.Render("platform:"), identity)
		fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("compatible, most specific first:"))
		for _, p := range env.CompatiblePlatforms() {
			fmt.Fprintln(cmd.OutOrStdout(), " ", TagStyle.Render(p))
		}
		return nil
	},
}
