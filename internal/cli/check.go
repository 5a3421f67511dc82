package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlinkcheck/internal/configloader"
	"github.com/yaklabco/mdlinkcheck/internal/logging"
	"github.com/yaklabco/mdlinkcheck/internal/ui/pretty"
	"github.com/yaklabco/mdlinkcheck/pkg/config"
	"github.com/yaklabco/mdlinkcheck/pkg/extract"
	"github.com/yaklabco/mdlinkcheck/pkg/linkcheck"
	"github.com/yaklabco/mdlinkcheck/pkg/report"
)

// ErrIssuesFound is returned when the check finds issues.
var ErrIssuesFound = errors.New("link issues found")

type checkFlags struct {
	format      string
	contentDirs []string
	disable     []string
	strict      bool
	noLinkRot   bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check links and images in Markdown files",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "",
		"output format: text, summary")
	cmd.Flags().StringSliceVar(&flags.contentDirs, "content-dirs", nil,
		"extra content folder names searched for cross-page targets")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil,
		"rule IDs or names to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false,
		"treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noLinkRot, "no-link-rot", false,
		"skip the advisory outdated-host scan")

	return cmd
}

const checkLongDescription = `Check the hyperlinks and images of Markdown files.

By default, checks all .md and .Rmd files in the current directory and
subdirectories. Specify paths to check specific files or directories.

Examples:
  mdlinkcheck check                  # Check current directory
  mdlinkcheck check episodes/        # Check one directory
  mdlinkcheck check index.md         # Check a single file
  mdlinkcheck check --strict         # Treat warnings as errors
  mdlinkcheck check --format summary # Print a summary block`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := resolveConfig(cmd, workDir, flags)
	if err != nil {
		return err
	}

	files, err := discoverFiles(ctx, workDir, args)
	if err != nil {
		return fmt.Errorf("discover files: %w", err)
	}

	logger.Debug("starting check run",
		logging.FieldWorkingDir, workDir,
		logging.FieldFilesDiscovered, len(files),
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	stats := report.NewStats()

	for _, file := range files {
		display := displayPath(workDir, file)
		warnings, rots, err := checkFile(ctx, file, display, cfg)
		if err != nil {
			return fmt.Errorf("check %s: %w", display, err)
		}

		stats.AddFile(warnings)
		stats.RotMatches += len(rots)

		if cfg.Format == config.FormatText {
			if len(warnings) > 0 {
				fmt.Fprintln(out, styles.FormatFileHeader(display, len(warnings)))
				for _, w := range warnings {
					fmt.Fprint(out, styles.FormatWarning(w))
				}
			}
			for _, m := range rots {
				fmt.Fprint(out, styles.FormatRotMatch(display, m))
			}
		}
	}

	switch cfg.Format {
	case config.FormatSummary:
		fmt.Fprint(out, styles.FormatSummary(stats, out))
	default:
		fmt.Fprint(out, styles.FormatSummaryOneLine(stats))
	}

	if ExitCodeFromStats(stats, cfg.Strict) != ExitSuccess {
		return ErrIssuesFound
	}

	return nil
}

// checkFile validates one document and returns its warnings and
// advisory link-rot matches.
func checkFile(ctx context.Context, path, display string, cfg *config.Config) ([]report.Warning, []linkcheck.RotMatch, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	result := extract.FromSource(source)

	table := linkcheck.Validate(ctx, result.Table, result.Document(filepath.Dir(path)),
		linkcheck.WithContentDirs(cfg.ContentDirs...),
		linkcheck.WithDisabledRules(cfg.DisableRules...),
	)

	warnings := report.FromTable(display, table)

	var rots []linkcheck.RotMatch
	if cfg.LinkRot {
		if found, matches := linkcheck.CheckLinkRot(result.Table); found {
			rots = matches
		}
	}

	return warnings, rots, nil
}

// resolveConfig loads the effective configuration and applies CLI flag
// overrides on top.
func resolveConfig(cmd *cobra.Command, workDir string, flags *checkFlags) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	cfg, err := configloader.Resolve(configPath, workDir)
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
		if !cfg.Format.IsValid() {
			return nil, fmt.Errorf("invalid format %q", flags.format)
		}
	}
	if len(flags.contentDirs) > 0 {
		cfg.ContentDirs = append(cfg.ContentDirs, flags.contentDirs...)
	}
	if len(flags.disable) > 0 {
		cfg.DisableRules = append(cfg.DisableRules, flags.disable...)
	}
	if flags.strict {
		cfg.Strict = true
	}
	if flags.noLinkRot {
		cfg.LinkRot = false
	}

	return cfg, nil
}

// displayPath renders a path relative to the working directory when
// possible.
func displayPath(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil || rel == "" {
		return path
	}
	return rel
}
