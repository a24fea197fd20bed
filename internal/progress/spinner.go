package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// StageSpinner animates a single release stage. On non-TTY output it
// degrades to plain start/stop lines so logs stay readable.
type StageSpinner struct {
	spin    *spinner.Spinner
	out     io.Writer
	symbols ProgressSymbols
	active  bool
}

// NewStageSpinner creates a spinner appropriate for the detected terminal.
func NewStageSpinner(out io.Writer, caps TerminalCapabilities) *StageSpinner {
	symbols := SelectSymbols(caps)

	s := &StageSpinner{out: out, symbols: symbols}
	if caps.IsTTY {
		s.spin = spinner.New(
			spinner.CharSets[symbols.SpinnerSet],
			120*time.Millisecond,
			spinner.WithWriter(out),
		)
	}
	return s
}

// Start begins animating with the given message.
func (s *StageSpinner) Start(message string) {
	if s.spin == nil {
		return
	}
	s.spin.Suffix = " " + message
	s.spin.Start()
	s.active = true
}

// Stop ends the animation and prints the completion symbol and message.
func (s *StageSpinner) Stop(success bool, message string) {
	if s.active {
		s.spin.Stop()
		s.active = false
	}

	symbol := s.symbols.Checkmark
	if !success {
		symbol = s.symbols.Failure
	}
	fmt.Fprintf(s.out, "%s %s\n", symbol, message)
}
