// Package pipeline provides the stage-execution framework for shiplog
// release runs. A run executes a fixed sequence of stages over an ordered
// set of plugins, threading one explicit, typed Context between them.
//
// The pipeline is intentionally single-threaded: stages run strictly in
// order, plugins run strictly in registration order within a stage, and
// each document is processed fully before the next. There is no locking
// and no cancellation; a fatal error aborts the whole run.
package pipeline

import "fmt"

// Context carries the shared state of one release run between stages. It
// is constructed once per run and passed by reference; there is no other
// channel between plugins.
//
// Validation problems accumulate in the error list instead of aborting, so
// a user sees every problem from one run. A non-empty list after the check
// stage prevents all later stages.
type Context struct {
	// Cwd is the project directory all relative paths resolve against.
	Cwd string

	// CurrentVersion is the version currently recorded in the package
	// manifest, published during the check stage.
	CurrentVersion string

	// NewVersion and ReleaseDate are supplied by the version-resolution
	// plugin; the changelog engine only substitutes them.
	NewVersion  string
	ReleaseDate string

	// Retention is the number of entries kept in the primary changelog
	// before older ones migrate to the archive. Zero means unlimited.
	Retention int

	// DryRun suppresses every file, repository, and command mutation
	// while still computing and publishing all results.
	DryRun bool

	// Changelog is the document state published by the changelog plugin
	// during check and consumed back, possibly mutated, during edit.
	Changelog ChangelogState

	// ChangedFiles lists repository-relative paths rewritten during the
	// edit stage, for the commit stage to pick up.
	ChangedFiles []string

	errors []string
}

// ChangelogState is the changelog data published on the context for
// downstream stages and collaborators. Entries are verbatim text blocks,
// heading line included, so collaborators can inspect or rewrite them
// without depending on the engine's internal types.
type ChangelogState struct {
	// Filename is the resolved path of the primary changelog document.
	Filename string
	// Prefix is the exact heading-prefix literal of the primary document.
	Prefix string

	Header  string
	Entries []string
	Footer  string

	// PlaceholderBody is the body text of the placeholder entry alone,
	// without its heading line.
	PlaceholderBody string

	// Archive holds the old-changelog document state when an archive
	// file exists or was created by redistribution.
	Archive *ArchiveState

	// RenderedPrimary and RenderedArchive are the serialized document
	// texts computed during the edit stage. They are populated even
	// under dry-run so the result can be logged and verified.
	RenderedPrimary string
	RenderedArchive string
}

// ArchiveState is the parsed state of the old-changelog archive document.
type ArchiveState struct {
	Filename string
	Prefix   string

	Header  string
	Entries []string
	Footer  string
}

// Error appends a human-readable problem to the accumulated error list.
func (c *Context) Error(msg string) {
	c.errors = append(c.errors, msg)
}

// Errorf appends a formatted problem to the accumulated error list.
func (c *Context) Errorf(format string, args ...any) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any problem has been accumulated.
func (c *Context) HasErrors() bool {
	return len(c.errors) > 0
}

// Errors returns the accumulated problems in the order they were reported.
func (c *Context) Errors() []string {
	return c.errors
}
