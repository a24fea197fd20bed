package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shiplog/shiplog/internal/config"
	"github.com/shiplog/shiplog/internal/errors"
	"github.com/shiplog/shiplog/internal/pipeline"
)

var checkFormatFlag string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the changelog without releasing",
	Long: `Run the inspection pass alone: parse the changelog documents,
validate the placeholder, and report every problem found. Nothing is
written.

Examples:
  shiplog check                # Human-readable report
  shiplog check --format yaml  # Machine-readable report for tooling`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFormatFlag, "format", "text", "Report format: text | yaml")
}

// checkReport is the machine-readable summary of one inspection pass.
type checkReport struct {
	Changelog      string   `yaml:"changelog"`
	HeadingPrefix  string   `yaml:"heading_prefix"`
	Entries        int      `yaml:"entries"`
	Archive        string   `yaml:"archive,omitempty"`
	ArchiveEntries int      `yaml:"archive_entries,omitempty"`
	CurrentVersion string   `yaml:"current_version,omitempty"`
	NextVersion    string   `yaml:"next_version,omitempty"`
	ReleaseDate    string   `yaml:"release_date,omitempty"`
	Retention      int      `yaml:"retention,omitempty"`
	Problems       []string `yaml:"problems,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkFormatFlag != "text" && checkFormatFlag != "yaml" {
		errors.PrintError(errors.NewArgumentError(
			fmt.Sprintf("unknown format %q", checkFormatFlag),
			"Use --format text or --format yaml"))
		return NewExitError(ExitInvalidArguments)
	}

	cfg, err := config.Load(configPathFlag)
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	ctx, err := newContext(cfg)
	if err != nil {
		return err
	}
	ctx.DryRun = true

	runner := pipeline.NewRunner(cmd.ErrOrStderr(), buildPlugins(cfg, "")...)
	if err := runner.RunStages(ctx, pipeline.StageCheck); err != nil {
		if cliErr := errors.AsCLIError(err); cliErr == nil || cliErr.Category != errors.Validation {
			return err
		}
	}

	if err := printReport(cmd, ctx); err != nil {
		return err
	}

	if ctx.HasErrors() {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

// printReport renders the inspection result in the requested format.
func printReport(cmd *cobra.Command, ctx *pipeline.Context) error {
	report := checkReport{
		Changelog:      ctx.Changelog.Filename,
		HeadingPrefix:  ctx.Changelog.Prefix,
		Entries:        len(ctx.Changelog.Entries),
		CurrentVersion: ctx.CurrentVersion,
		NextVersion:    ctx.NewVersion,
		ReleaseDate:    ctx.ReleaseDate,
		Retention:      ctx.Retention,
		Problems:       ctx.Errors(),
	}
	if ctx.Changelog.Archive != nil {
		report.Archive = ctx.Changelog.Archive.Filename
		report.ArchiveEntries = len(ctx.Changelog.Archive.Entries)
	}

	out := cmd.OutOrStdout()

	if checkFormatFlag == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(out, "Changelog: %s (%d entries, prefix %q)\n",
		report.Changelog, report.Entries, report.HeadingPrefix)
	if report.Archive != "" {
		fmt.Fprintf(out, "Archive:   %s (%d entries)\n", report.Archive, report.ArchiveEntries)
	}
	if report.CurrentVersion != "" {
		fmt.Fprintf(out, "Version:   %s -> %s (%s)\n",
			report.CurrentVersion, report.NextVersion, report.ReleaseDate)
	}
	if len(report.Problems) == 0 {
		fmt.Fprintln(out, "The changelog is ready for a release.")
		return nil
	}

	fmt.Fprintf(out, "\n%d problem(s):\n", len(report.Problems))
	for _, p := range report.Problems {
		fmt.Fprintf(out, "  - %s\n", p)
	}
	return nil
}
