package semver

import (
	"github.com/shiplog/shiplog/internal/errors"
	"github.com/shiplog/shiplog/internal/pipeline"
)

// Plugin resolves the new version and release date during the check stage
// and publishes them on the context. It runs after the manifest plugin,
// which supplies the current version.
type Plugin struct {
	// Spec is the version argument from the command line: an explicit
	// version or a bump keyword. Defaults to "patch".
	Spec string
}

// ID returns the plugin name.
func (p *Plugin) ID() string { return "version" }

// Stages lists the stages this plugin participates in.
func (p *Plugin) Stages() []pipeline.Stage {
	return []pipeline.Stage{pipeline.StageCheck}
}

// ExecuteStage resolves NewVersion and ReleaseDate onto the context.
func (p *Plugin) ExecuteStage(ctx *pipeline.Context, stage pipeline.Stage) error {
	if stage != pipeline.StageCheck {
		return nil
	}

	spec := p.Spec
	if spec == "" {
		spec = "patch"
	}

	// A bump keyword needs a parseable current version. When the manifest
	// check already reported that version as the problem, accumulate here
	// too instead of failing the run with a misleading spec error, so the
	// post-check gate surfaces everything together.
	if isBumpKeyword(spec) && !IsValid(ctx.CurrentVersion) {
		ctx.Errorf("cannot bump %s: current version %q is not a semver version", spec, ctx.CurrentVersion)
		return nil
	}

	next, err := Resolve(ctx.CurrentVersion, spec)
	if err != nil {
		return errors.InvalidVersionSpec(spec)
	}

	ctx.NewVersion = next
	ctx.ReleaseDate = Today()
	return nil
}

// isBumpKeyword reports whether spec names a bump rather than a version.
func isBumpKeyword(spec string) bool {
	return spec == "major" || spec == "minor" || spec == "patch"
}
