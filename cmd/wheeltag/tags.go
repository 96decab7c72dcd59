// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"wheeltag/pkg/tags"
)

var (
	tagsPython   string
	tagsImpl     string
	tagsABI      string
	tagsPlatform string
	tagsJSON     bool
	tagsCount    bool

	tagsCmd = &cobra.Command{
		Use:   "tags",
		Short: "Print supported compatibility tags, best match first",
		Long: `Print every compatibility tag the environment can consume, in strict
best-match-first order with no duplicates. Each flag independently
overrides the corresponding environment fact; an explicit --platform is
expanded by static family rules only, without probing the local system.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			env := buildEnvironment(cfg, logger)

			opts := tags.Options{
				Version:  tagsPython,
				Platform: tagsPlatform,
				Impl:     tagsImpl,
				ABI:      tagsABI,
			}
			if opts.Version == "" && cfg.PythonVersion != "" {
				opts.Version = cfg.PythonVersion
			}
			if opts.Platform == "" && cfg.Platform != "" {
				opts.Platform = cfg.Platform
			}
			if opts.Impl == "" && cfg.Implementation != "" {
				opts.Impl = cfg.Implementation
			}
			if opts.ABI == "" && cfg.ABI != "" {
				opts.ABI = cfg.ABI
			}

			supported := tags.Supported(env, opts)
			return renderTags(cmd, supported)
		},
	}
)

func init() {
	tagsCmd.Flags().StringVar(&tagsPython, "python", "", "compact interpreter version, e.g. 38 or 310")
	tagsCmd.Flags().StringVar(&tagsImpl, "implementation", "", "interpreter implementation code, e.g. cp or pp")
	tagsCmd.Flags().StringVar(&tagsABI, "abi", "", "exact ABI tag, e.g. cp38 or none")
	tagsCmd.Flags().StringVar(&tagsPlatform, "platform", "", "exact platform, e.g. manylinux2014_x86_64")
	tagsCmd.Flags().BoolVar(&tagsJSON, "json", false, "emit tags as JSON")
	tagsCmd.Flags().BoolVar(&tagsCount, "count", false, "print only the number of tags")
}

// tagJSON is the wire shape of one tag in --json output.
type tagJSON struct {
	Interpreter string `json:"interpreter"`
	ABI         string `json:"abi"`
	Platform    string `json:"platform"`
	Tag         string `json:"tag"`
}

func renderTags(cmd *cobra.Command, supported []tags.Tag) error {
	if tagsCount {
		fmt.Fprintln(cmd.OutOrStdout(), len(supported))
		return nil
	}
	if tagsJSON {
		out := make([]tagJSON, 0, len(supported))
		for _, t := range supported {
			out = append(out, tagJSON{
				Interpreter: t.Interpreter(),
				ABI:         t.ABI(),
				Platform:    t.Platform(),
				Tag:         t.String(),
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, t := range supported {
		fmt.Fprintln(cmd.OutOrStdout(), TagStyle.Render(t.String()))
	}
	return nil
}
