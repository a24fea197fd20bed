package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shiplog/shiplog/internal/changelog"
	"github.com/shiplog/shiplog/internal/config"
	"github.com/shiplog/shiplog/internal/errors"
	"github.com/shiplog/shiplog/internal/gitrepo"
	"github.com/shiplog/shiplog/internal/manifest"
	"github.com/shiplog/shiplog/internal/output"
	"github.com/shiplog/shiplog/internal/pipeline"
	"github.com/shiplog/shiplog/internal/semver"
)

var (
	releaseRetentionFlag int
	releaseNoPushFlag    bool
	releaseYesFlag       bool
)

var releaseCmd = &cobra.Command{
	Use:   "release [version|major|minor|patch]",
	Short: "Resolve the changelog placeholder and cut a release",
	Long: `Cut a release from the current changelog.

The placeholder entry is rewritten with the resolved version and today's
date, the manifest version is bumped, entries beyond the retention count
migrate to the archive file, and the result is committed and tagged.

Examples:
  shiplog release              # Patch bump
  shiplog release minor        # Minor bump
  shiplog release 2.0.0        # Explicit version
  shiplog release --dry-run    # Show what would be written
  shiplog release --retention 5 --no-push`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRelease,
}

func init() {
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().IntVar(&releaseRetentionFlag, "retention", -1, "Entries kept in the primary changelog (overrides config)")
	releaseCmd.Flags().BoolVar(&releaseNoPushFlag, "no-push", false, "Skip pushing the release commit and tag")
	releaseCmd.Flags().BoolVarP(&releaseYesFlag, "yes", "y", false, "Skip the confirmation prompt")
}

func runRelease(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPathFlag)
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}
	if releaseRetentionFlag >= 0 {
		cfg.Changelog.Retention = releaseRetentionFlag
	}
	if releaseNoPushFlag {
		cfg.Git.Push = false
	}

	spec := ""
	if len(args) == 1 {
		spec = args[0]
	}

	ctx, err := newContext(cfg)
	if err != nil {
		return err
	}

	if !ctx.DryRun && !releaseYesFlag {
		if !confirm(cmd, "Cut a release from this directory?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	runner := pipeline.NewRunner(cmd.OutOrStdout(), buildPlugins(cfg, spec)...)
	runner.Handler = newStageTimer(cmd.OutOrStdout())

	if err := runner.Run(ctx); err != nil {
		return err
	}

	if ctx.DryRun {
		previewDocuments(cmd, ctx)
	}
	output.PrintReleaseSummary(cmd.OutOrStdout(), ctx.NewVersion, ctx.ReleaseDate)
	return nil
}

// newContext builds the per-run pipeline context from configuration and
// global flags.
func newContext(cfg *config.Configuration) (*pipeline.Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return &pipeline.Context{
		Cwd:       wd,
		Retention: cfg.Changelog.Retention,
		DryRun:    dryRunFlag || cfg.DryRun,
	}, nil
}

// buildPlugins assembles the release collaborators in execution order: the
// manifest supplies the current version, the resolver picks the new one,
// the changelog engine does the merge, and git records the result.
func buildPlugins(cfg *config.Configuration, spec string) []pipeline.Plugin {
	plugins := []pipeline.Plugin{
		&manifest.Plugin{
			Path:     cfg.Manifest.Path,
			SyncCmd:  cfg.Manifest.SyncCmd,
			Lockfile: cfg.Manifest.Lockfile,
		},
		&semver.Plugin{Spec: spec},
		changelog.NewPlugin(cfg.Changelog.Path, cfg.Changelog.EmbeddedPath, cfg.Changelog.OldPath),
	}
	if cfg.Git.Enabled {
		plugins = append(plugins, &gitrepo.Plugin{
			Remote:    cfg.Git.Remote,
			TagPrefix: cfg.Git.TagPrefix,
			Push:      cfg.Git.Push,
		})
	}
	return plugins
}

// previewDocuments prints the serialized documents a dry run would have
// written.
func previewDocuments(cmd *cobra.Command, ctx *pipeline.Context) {
	out := cmd.OutOrStdout()
	state := ctx.Changelog

	if state.RenderedPrimary != "" {
		output.PrintDocumentPreview(out, state.Filename, state.RenderedPrimary)
	}
	if state.RenderedArchive != "" && state.Archive != nil {
		output.PrintDocumentPreview(out, state.Archive.Filename, state.RenderedArchive)
	}
}

// confirm asks a yes/no question on the command's input stream.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
