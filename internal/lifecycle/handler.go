// Package lifecycle provides wrapper functions for release stage execution.
// It handles timing and completion dispatch, eliminating boilerplate in the
// pipeline runner.
//
// The lifecycle package is intentionally minimal: no event bus, no
// goroutines, no external dependencies. Each wrapper captures start time,
// executes the provided function, calculates duration, and calls the
// appropriate handler method.
package lifecycle

import "time"

// StageHandler defines the interface for stage completion dispatch.
// It is defined here rather than next to its implementations so the
// pipeline package does not import them.
//
// Implementations must tolerate being nil - the wrapper functions check
// for nil before calling any method.
type StageHandler interface {
	// OnStageComplete is called when a release stage finishes execution.
	// Parameters:
	//   - name: the stage name (e.g., "check", "edit", "commit", "push")
	//   - success: true if the stage completed without a fatal error
	//   - duration: how long the stage took to execute
	OnStageComplete(name string, success bool, duration time.Duration)
}

// RunStage executes fn, timing it and dispatching completion to the
// handler. The function's error is returned unchanged.
func RunStage(h StageHandler, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	if h != nil {
		h.OnStageComplete(name, err == nil, time.Since(start))
	}
	return err
}
