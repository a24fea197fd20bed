package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// stageTimer prints per-stage timing when --verbose is set. It satisfies
// lifecycle.StageHandler.
type stageTimer struct {
	out io.Writer
}

// newStageTimer returns a handler, or nil when timing output is off.
func newStageTimer(out io.Writer) *stageTimer {
	if !verboseFlag {
		return nil
	}
	return &stageTimer{out: out}
}

// OnStageComplete prints the stage result with its duration.
// Safe on a nil receiver, per the lifecycle.StageHandler contract.
func (t *stageTimer) OnStageComplete(name string, success bool, duration time.Duration) {
	if t == nil {
		return
	}
	dim := color.New(color.Faint).SprintFunc()
	result := "ok"
	if !success {
		result = "failed"
	}
	fmt.Fprintf(t.out, "%s\n", dim(fmt.Sprintf("  stage %s %s in %s", name, result, duration.Round(time.Millisecond))))
}
