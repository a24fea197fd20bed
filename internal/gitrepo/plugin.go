package gitrepo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/shiplog/shiplog/internal/errors"
	"github.com/shiplog/shiplog/internal/pipeline"
)

// Plugin records the release in git: the check stage verifies the project
// is a clean repository, the commit stage stages the changed files and
// creates the release commit plus an annotated version tag, and the push
// stage publishes both. The runner skips commit and push entirely under
// dry-run.
type Plugin struct {
	// Remote names the push target. Defaults to "origin".
	Remote string
	// TagPrefix is prepended to the version for the tag name.
	TagPrefix string
	// Push enables the push stage.
	Push bool

	repo   *git.Repository
	commit plumbing.Hash
}

// ID returns the plugin name.
func (p *Plugin) ID() string { return "git" }

// Stages lists the stages this plugin participates in.
func (p *Plugin) Stages() []pipeline.Stage {
	return []pipeline.Stage{pipeline.StageCheck, pipeline.StageCommit, pipeline.StagePush}
}

// ExecuteStage dispatches one stage.
func (p *Plugin) ExecuteStage(ctx *pipeline.Context, stage pipeline.Stage) error {
	switch stage {
	case pipeline.StageCheck:
		return p.check(ctx)
	case pipeline.StageCommit:
		return p.record(ctx)
	case pipeline.StagePush:
		return p.push(ctx)
	default:
		return nil
	}
}

// check opens the repository and verifies the worktree is clean. A dirty
// worktree is a reported problem so the user sees it alongside any
// changelog issues; a missing repository is fatal.
func (p *Plugin) check(ctx *pipeline.Context) error {
	repo, err := Open(ctx.Cwd)
	if err != nil {
		return errors.NotARepository(ctx.Cwd)
	}
	p.repo = repo

	clean, err := IsClean(repo)
	if err != nil {
		return err
	}
	if !clean {
		ctx.Error(errors.DirtyWorktree().Message)
	}
	return nil
}

// record creates the release commit and annotated tag.
func (p *Plugin) record(ctx *pipeline.Context) error {
	if len(ctx.ChangedFiles) == 0 {
		return nil
	}

	tag := p.tagName(ctx.NewVersion)
	message := fmt.Sprintf("chore: release %s", tag)
	hash, err := CommitFiles(p.repo, ctx.ChangedFiles, message)
	if err != nil {
		return err
	}
	p.commit = hash

	return CreateTag(p.repo, tag, hash, fmt.Sprintf("Release %s", tag))
}

// push publishes the release commit and tag.
func (p *Plugin) push(ctx *pipeline.Context) error {
	if !p.Push || p.commit.IsZero() {
		return nil
	}

	remote := p.Remote
	if remote == "" {
		remote = "origin"
	}
	return Push(p.repo, remote, p.tagName(ctx.NewVersion))
}

// tagName builds the tag for a version, defaulting to the "v" prefix.
func (p *Plugin) tagName(version string) string {
	prefix := p.TagPrefix
	if prefix == "" {
		prefix = "v"
	}
	return prefix + version
}
