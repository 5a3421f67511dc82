// Package cli provides the Cobra command structure for mdlinkcheck.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlinkcheck/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdlinkcheck command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdlinkcheck",
		Short: "Validate hyperlinks and images in Markdown documents",
		Long: `mdlinkcheck validates the hyperlinks and images of Markdown documents.

It checks link protocols, HTTPS usage, in-page anchors against the
document's own headings, cross-document targets against the lesson
layout on disk, image alt text, and link text quality. Known dead or
relocated hosts are flagged with a suggested replacement.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
