// Package cli implements the shiplog command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/shiplog/shiplog/internal/errors"
	"github.com/shiplog/shiplog/internal/version"
)

var (
	configPathFlag string
	dryRunFlag     bool
	verboseFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "shiplog",
	Short: "Release automation around a human-edited changelog",
	Long: `shiplog turns the work-in-progress section of your changelog into a
dated release entry, bumps the package manifest, migrates old entries to an
archive file, and records the release as a git commit and tag.

The changelog placeholder heading looks like:

  ## **WORK IN PROGRESS** · optional release name

Run 'shiplog check' to validate the changelog, and 'shiplog release' to
cut a release.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Path to project config file (default .shiplog/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&dryRunFlag, "dry-run", false, "Compute everything but write nothing")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print per-stage timing")
}

// Execute runs the root command and renders structured errors. The returned
// error is non-nil when the process should exit non-zero.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if exitErr, ok := err.(*ExitError); ok {
		return exitErr
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
		return err
	}

	errors.PrintError(errors.Wrap(err, errors.Runtime))
	return err
}
