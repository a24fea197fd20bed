package manifest

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/shiplog/shiplog/internal/errors"
	"github.com/shiplog/shiplog/internal/pipeline"
	"github.com/shiplog/shiplog/internal/semver"
)

// Plugin wires the package descriptor into the release pipeline. The check
// stage loads the descriptor and publishes the current version; the edit
// stage rewrites the version field and runs the configured lockfile-sync
// command. Both mutations are skipped under dry-run.
type Plugin struct {
	// Path is the descriptor path relative to the project directory.
	Path string
	// SyncCmd is the lockfile-sync command line, e.g.
	// "npm install --package-lock-only". Empty disables the sync step.
	SyncCmd string
	// Lockfile is the lockfile path relative to the project directory,
	// recorded as changed after a successful sync so the release commit
	// includes it.
	Lockfile string
}

// ID returns the plugin name.
func (p *Plugin) ID() string { return "manifest" }

// Stages lists the stages this plugin participates in.
func (p *Plugin) Stages() []pipeline.Stage {
	return []pipeline.Stage{pipeline.StageCheck, pipeline.StageEdit}
}

// ExecuteStage dispatches one stage.
func (p *Plugin) ExecuteStage(ctx *pipeline.Context, stage pipeline.Stage) error {
	switch stage {
	case pipeline.StageCheck:
		return p.check(ctx)
	case pipeline.StageEdit:
		return p.edit(ctx)
	default:
		return nil
	}
}

// check loads the descriptor and publishes the current version.
func (p *Plugin) check(ctx *pipeline.Context) error {
	path := filepath.Join(ctx.Cwd, p.Path)
	if _, err := os.Stat(path); err != nil {
		return errors.MissingManifest(path)
	}
	m, err := Load(path)
	if err != nil {
		return err
	}

	current := m.Version()
	if current == "" {
		ctx.Errorf("manifest %s has no version field", path)
		return nil
	}
	if !semver.IsValid(current) {
		ctx.Errorf("manifest %s has invalid version %q", path, current)
		return nil
	}

	ctx.CurrentVersion = semver.Normalize(current)
	return nil
}

// edit rewrites the version field and syncs the lockfile.
func (p *Plugin) edit(ctx *pipeline.Context) error {
	if ctx.DryRun {
		return nil
	}

	path := filepath.Join(ctx.Cwd, p.Path)
	m, err := Load(path)
	if err != nil {
		return err
	}

	m.SetVersion(ctx.NewVersion)
	if err := m.Save(); err != nil {
		return err
	}
	ctx.ChangedFiles = append(ctx.ChangedFiles, p.Path)

	return p.syncLockfile(ctx)
}

// syncLockfile runs the configured lockfile-sync command in the project
// directory and records the lockfile as changed, so the release commit
// picks it up instead of leaving the worktree dirty.
func (p *Plugin) syncLockfile(ctx *pipeline.Context) error {
	if p.SyncCmd == "" {
		return nil
	}

	parts := strings.Fields(p.SyncCmd)
	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Dir = ctx.Cwd

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("lockfile sync %q: %w\n%s", p.SyncCmd, err, out)
	}

	if p.Lockfile != "" {
		if _, err := os.Stat(filepath.Join(ctx.Cwd, p.Lockfile)); err == nil {
			ctx.ChangedFiles = append(ctx.ChangedFiles, p.Lockfile)
		}
	}
	return nil
}
