package pipeline

import (
	"fmt"
	"io"

	"github.com/shiplog/shiplog/internal/errors"
	"github.com/shiplog/shiplog/internal/lifecycle"
	"github.com/shiplog/shiplog/internal/output"
	"github.com/shiplog/shiplog/internal/progress"
)

// Runner executes the release stages over an ordered set of plugins.
type Runner struct {
	// Plugins participate in registration order within each stage.
	Plugins []Plugin
	// Handler receives per-stage timing dispatch. May be nil.
	Handler lifecycle.StageHandler
	// Out receives progress output.
	Out io.Writer
	// Caps controls spinner and symbol selection.
	Caps progress.TerminalCapabilities
}

// NewRunner creates a runner with detected terminal capabilities.
func NewRunner(out io.Writer, plugins ...Plugin) *Runner {
	return &Runner{
		Plugins: plugins,
		Out:     out,
		Caps:    progress.DetectTerminalCapabilities(),
	}
}

// Run executes all stages in canonical order against the context.
//
// A plugin error is fatal: the run aborts immediately and no later stage
// executes. Problems accumulated on the context during the check stage
// block every later stage, so nothing is written while the changelog is
// invalid. Under dry-run the check and edit stages still run (edit computes
// but does not write); commit and push are skipped entirely.
func (r *Runner) Run(ctx *Context) error {
	if ctx.DryRun {
		output.PrintDryRunBanner(r.Out)
	}
	return r.RunStages(ctx, Stages()...)
}

// RunStages executes the given stages in the order supplied. The check
// command uses this to run the inspection pass alone.
func (r *Runner) RunStages(ctx *Context, stages ...Stage) error {
	for i, stage := range stages {
		if ctx.DryRun && (stage == StageCommit || stage == StagePush) {
			output.PrintStageSkipped(r.Out, string(stage), "dry run")
			continue
		}

		output.PrintStageHeader(r.Out, i+1, len(stages), string(stage))
		if err := r.runStage(ctx, stage); err != nil {
			return err
		}

		if stage == StageCheck && ctx.HasErrors() {
			return errors.ChangelogInvalid(ctx.Errors())
		}
	}

	return nil
}

// runStage executes one stage across every participating plugin.
func (r *Runner) runStage(ctx *Context, stage Stage) error {
	return lifecycle.RunStage(r.Handler, string(stage), func() error {
		for _, p := range r.Plugins {
			if !participates(p, stage) {
				continue
			}

			spin := progress.NewStageSpinner(r.Out, r.Caps)
			spin.Start(fmt.Sprintf("%s: %s", stage, p.ID()))

			err := p.ExecuteStage(ctx, stage)
			spin.Stop(err == nil, fmt.Sprintf("%s: %s", stage, p.ID()))
			if err != nil {
				return fmt.Errorf("plugin %s failed during %s: %w", p.ID(), stage, err)
			}
		}
		return nil
	})
}
