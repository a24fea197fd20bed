package pipeline

// Stage is one step of the release lifecycle. Stages always execute in
// canonical order: check -> edit -> commit -> push.
type Stage string

const (
	// StageCheck inspects the project and publishes state onto the
	// context. No mutation happens here.
	StageCheck Stage = "check"
	// StageEdit applies the computed changes to the working tree.
	StageEdit Stage = "edit"
	// StageCommit records the changed files as a release commit and tag.
	StageCommit Stage = "commit"
	// StagePush publishes the release commit and tag to the remote.
	StagePush Stage = "push"
)

// Stages returns all stages in canonical execution order.
func Stages() []Stage {
	return []Stage{StageCheck, StageEdit, StageCommit, StagePush}
}

// Plugin is one release collaborator. A plugin declares which stages it
// participates in and is invoked once per declared stage, in plugin
// registration order.
//
// A returned error is fatal and aborts the run immediately. Recoverable
// validation problems go through Context.Error instead, so every problem
// from the check stage surfaces in one run.
type Plugin interface {
	// ID returns the plugin's short name for progress and error output.
	ID() string

	// Stages lists the stages this plugin participates in.
	Stages() []Stage

	// ExecuteStage runs the plugin's work for one stage.
	ExecuteStage(ctx *Context, stage Stage) error
}

// participates reports whether the plugin declared the given stage.
func participates(p Plugin, stage Stage) bool {
	for _, s := range p.Stages() {
		if s == stage {
			return true
		}
	}
	return false
}
