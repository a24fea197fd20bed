package pipeline

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sherrors "github.com/shiplog/shiplog/internal/errors"
)

// fakePlugin records the stages it was invoked for.
type fakePlugin struct {
	id      string
	stages  []Stage
	calls   []Stage
	onCheck func(ctx *Context) error
}

func (f *fakePlugin) ID() string      { return f.id }
func (f *fakePlugin) Stages() []Stage { return f.stages }

func (f *fakePlugin) ExecuteStage(ctx *Context, stage Stage) error {
	f.calls = append(f.calls, stage)
	if stage == StageCheck && f.onCheck != nil {
		return f.onCheck(ctx)
	}
	return nil
}

func newRunner(plugins ...Plugin) *Runner {
	return &Runner{Plugins: plugins, Out: &bytes.Buffer{}}
}

func TestRunner_ExecutesStagesInCanonicalOrder(t *testing.T) {
	p := &fakePlugin{id: "all", stages: Stages()}

	require.NoError(t, newRunner(p).Run(&Context{}))

	assert.Equal(t, []Stage{StageCheck, StageEdit, StageCommit, StagePush}, p.calls)
}

func TestRunner_SkipsUndeclaredStages(t *testing.T) {
	p := &fakePlugin{id: "checker", stages: []Stage{StageCheck}}

	require.NoError(t, newRunner(p).Run(&Context{}))

	assert.Equal(t, []Stage{StageCheck}, p.calls)
}

func TestRunner_AccumulatedErrorsBlockWritePass(t *testing.T) {
	failing := &fakePlugin{
		id:     "validator",
		stages: []Stage{StageCheck},
		onCheck: func(ctx *Context) error {
			ctx.Error("placeholder is missing")
			ctx.Error("changelog is empty")
			return nil
		},
	}
	editor := &fakePlugin{id: "editor", stages: []Stage{StageEdit}}

	err := newRunner(failing, editor).Run(&Context{})

	require.Error(t, err)
	cliErr := sherrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, sherrors.Validation, cliErr.Category)
	assert.Equal(t, []string{"placeholder is missing", "changelog is empty"}, cliErr.Details,
		"every accumulated problem surfaces in one run")
	assert.Empty(t, editor.calls, "no later stage runs while the changelog is invalid")
}

func TestRunner_FatalErrorAbortsImmediately(t *testing.T) {
	fatal := &fakePlugin{
		id:     "broken",
		stages: []Stage{StageCheck},
		onCheck: func(ctx *Context) error {
			return fmt.Errorf("no changelog file found")
		},
	}
	later := &fakePlugin{id: "later", stages: Stages()}

	err := newRunner(fatal, later).Run(&Context{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Empty(t, later.calls, "no other plugin runs after a fatal error")
}

func TestRunner_DryRunSkipsCommitAndPush(t *testing.T) {
	p := &fakePlugin{id: "all", stages: Stages()}

	require.NoError(t, newRunner(p).Run(&Context{DryRun: true}))

	assert.Equal(t, []Stage{StageCheck, StageEdit}, p.calls)
}

func TestRunner_PluginsRunInRegistrationOrder(t *testing.T) {
	var order []string
	mk := func(id string) *fakePlugin {
		return &fakePlugin{
			id:     id,
			stages: []Stage{StageCheck},
			onCheck: func(ctx *Context) error {
				order = append(order, id)
				return nil
			},
		}
	}

	require.NoError(t, newRunner(mk("manifest"), mk("version"), mk("changelog")).Run(&Context{}))

	assert.Equal(t, []string{"manifest", "version", "changelog"}, order)
}
