// Package output provides terminal output formatting utilities for the
// shiplog CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintStageHeader prints a colored stage header (e.g., "[Stage 1/4] check...").
// Uses cyan for the stage indicator and white for the stage name.
func PrintStageHeader(out io.Writer, stageNum, totalStages int, stageName string) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", cyan(fmt.Sprintf("[Stage %d/%d]", stageNum, totalStages)), white(stageName+"..."))
}

// PrintStageSuccess prints a colored success line for a completed stage.
func PrintStageSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), cyan(message))
}

// PrintStageSkipped prints a dim notice for a stage skipped under dry-run.
func PrintStageSkipped(out io.Writer, stageName, reason string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s\n", dim(fmt.Sprintf("- skipped %s (%s)", stageName, reason)))
}

// PrintDryRunBanner prints the banner shown at the start of a dry run.
func PrintDryRunBanner(out io.Writer) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s\n\n", yellow("DRY RUN - no files will be written"))
}

// PrintReleaseSummary prints the final release line with version and tag.
func PrintReleaseSummary(out io.Writer, version, date string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	fmt.Fprintf(out, "\n%s %s\n", green("✓ released"), white(fmt.Sprintf("%s (%s)", version, date)))
}

// PrintDocumentPreview prints a serialized document under a dim separator,
// used by dry runs to show what would have been written.
func PrintDocumentPreview(out io.Writer, path, text string) {
	dim := color.New(color.Faint).SprintFunc()
	width := GetTerminalWidth()

	label := " " + path + " "
	lineLen := (width - len(label)) / 2
	if lineLen < 3 {
		lineLen = 3
	}

	line := strings.Repeat("─", lineLen)
	fmt.Fprintf(out, "\n%s%s%s\n%s\n", dim(line), dim(label), dim(line), text)
}
