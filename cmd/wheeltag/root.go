// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"wheeltag/internal/config"
	"wheeltag/pkg/tags"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug-level output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without subcommands
	rootCmd = &cobra.Command{
		Use:   "wheeltag",
		Short: "Compute binary wheel compatibility tags",
		Long: TitleStyle.Render("wheeltag") + SubtitleStyle.Render(" - Compute binary wheel compatibility tags") + `

wheeltag derives the ordered list of compatibility tags an installer
uses to pick a prebuilt wheel for an interpreter environment, including
manylinux tier probing, macOS minimum-version expansion and hard-float
ARM detection.

` + SubtitleStyle.Render("Examples:") + `
  wheeltag tags                                 Tags for the local environment
  wheeltag tags --platform manylinux2014_x86_64 Tags for an explicit platform
  wheeltag tags --implementation pp --python 36 Tags for PyPy 3.6
  wheeltag platform                             Show platform detection detail`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/wheeltag/config.toml)")

	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(platformCmd)
	rootCmd.AddCommand(newConfigCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the CLI logger honoring --verbose and the configured
// level.
func newLogger(cfg *config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	level := log.WarnLevel
	if cfg != nil && cfg.LogLevel != "" {
		if parsed, err := log.ParseLevel(cfg.LogLevel); err == nil {
			level = parsed
		}
	}
	if verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}

// buildEnvironment assembles the tag environment: live host facts,
// overlaid with configured interpreter facts and build-config variables.
func buildEnvironment(cfg *config.Config, logger *log.Logger) *tags.Environment {
	env := tags.Host()
	env.Logger = logger
	if cfg == nil {
		return env
	}
	if cfg.Implementation != "" {
		env.Impl = cfg.Implementation
	}
	if cfg.PythonVersion != "" {
		if v := tags.ParseVersion(cfg.PythonVersion); v != nil {
			env.VersionInfo = v
		}
	}
	if len(cfg.ConfigVars) > 0 {
		vars := cfg.ConfigVars
		env.ConfigVar = func(name string) (string, bool) {
			v, ok := vars[name]
			return v, ok
		}
	}
	return env
}

// loadConfig reads CLI configuration, honoring --config.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
