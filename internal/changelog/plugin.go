package changelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shiplog/shiplog/internal/errors"
	"github.com/shiplog/shiplog/internal/pipeline"
)

// DefaultArchiveHeader is the header written when redistribution creates a
// fresh archive file.
const DefaultArchiveHeader = "# Changelog (older changes)"

// Plugin wires the changelog engine into the release pipeline.
//
// The check stage parses all candidate documents and publishes their
// header, footer, and raw entries onto the context; the edit stage reads
// the possibly-mutated state back, resolves the placeholder, redistributes
// entries by retention count, and serializes each affected document to
// disk. Under dry-run the edit stage still computes and publishes the
// serialized text but writes nothing.
type Plugin struct {
	// StandalonePath is the dedicated changelog file, tried first.
	StandalonePath string
	// EmbeddedPath is the broader document holding a changelog section,
	// tried when no standalone file exists.
	EmbeddedPath string
	// ArchivePath is the old-changelog archive file.
	ArchivePath string
}

// NewPlugin creates the plugin with the conventional candidate paths.
func NewPlugin(standalone, embedded, archive string) *Plugin {
	return &Plugin{
		StandalonePath: standalone,
		EmbeddedPath:   embedded,
		ArchivePath:    archive,
	}
}

// ID returns the plugin name.
func (p *Plugin) ID() string { return "changelog" }

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

// check locates and parses the candidate documents, validates the primary
// one, and publishes everything onto the context. Validation problems
// accumulate; only a project with no changelog file at all is fatal.
func (p *Plugin) check(ctx *pipeline.Context) error {
	primary, err := p.locatePrimary(ctx.Cwd)
	archivePath := filepath.Join(ctx.Cwd, p.ArchivePath)
	archiveExists := fileExists(archivePath)

	if err != nil {
		if !archiveExists {
			return errors.NoChangelogFound([]string{p.StandalonePath, p.EmbeddedPath})
		}
		ctx.Errorf("changelog file %s not found", p.StandalonePath)
		ctx.Changelog = pipeline.ChangelogState{
			Filename: filepath.Join(ctx.Cwd, p.StandalonePath),
			Prefix:   Standalone.Prefix(),
		}
	} else {
		if err := p.inspectPrimary(ctx, primary); err != nil {
			return err
		}
	}

	if archiveExists {
		if err := p.inspectArchive(ctx, archivePath); err != nil {
			return err
		}
	}

	return nil
}

// locatePrimary resolves the primary document path and role. The dedicated
// changelog file wins over the embedded section.
func (p *Plugin) locatePrimary(cwd string) (*Document, error) {
	standalone := filepath.Join(cwd, p.StandalonePath)
	if fileExists(standalone) {
		return &Document{Path: standalone, Role: Standalone}, nil
	}
	embedded := filepath.Join(cwd, p.EmbeddedPath)
	if fileExists(embedded) {
		return &Document{Path: embedded, Role: Embedded}, nil
	}
	return nil, os.ErrNotExist
}

// inspectPrimary parses and validates the primary document and publishes
// its state.
func (p *Plugin) inspectPrimary(ctx *pipeline.Context, doc *Document) error {
	raw, err := os.ReadFile(doc.Path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", doc.Path, err)
	}

	doc.Header, doc.Entries, doc.Footer = Parse(string(raw), doc.Prefix())

	for _, problem := range Validate(doc) {
		ctx.Error(problem)
	}
	// A document without any entry has no placeholder to resolve either.
	// Reporting it here lets the post-check gate stop the run before the
	// edit stage has mutated anything.
	if len(doc.Entries) == 0 {
		ctx.Errorf("the changelog placeholder %s is missing from %s", Placeholder, doc.Path)
	}

	state := pipeline.ChangelogState{
		Filename: doc.Path,
		Prefix:   doc.Prefix(),
		Header:   doc.Header,
		Entries:  EntryTexts(doc.Entries),
		Footer:   doc.Footer,
	}
	if placeholder, _, ok := FindPlaceholder(doc.Entries); ok {
		state.PlaceholderBody = placeholder.RawBody
	}

	ctx.Changelog = state
	return nil
}

// inspectArchive parses the archive document and publishes its state.
func (p *Plugin) inspectArchive(ctx *pipeline.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	header, entries, footer := Parse(string(raw), Archive.Prefix())
	ctx.Changelog.Archive = &pipeline.ArchiveState{
		Filename: path,
		Prefix:   Archive.Prefix(),
		Header:   header,
		Entries:  EntryTexts(entries),
		Footer:   footer,
	}
	return nil
}

// edit resolves the placeholder, redistributes entries under the retention
// count, serializes both documents, and writes them unless the run is a
// dry run. The archive content is computed from the pre-update primary
// entries before anything is written.
func (p *Plugin) edit(ctx *pipeline.Context) error {
	state := &ctx.Changelog
	entries := FromTexts(state.Entries)

	placeholder, idx, ok := FindPlaceholder(entries)
	if !ok {
		return errors.NewRuntimeError(
			fmt.Sprintf("no resolvable placeholder entry in %s", state.Filename))
	}
	resolved := ResolvePlaceholder(placeholder, ctx.NewVersion, ctx.ReleaseDate)
	entries[idx] = resolved
	state.PlaceholderBody = resolved.RawBody

	var archiveEntries []Entry
	if state.Archive != nil {
		archiveEntries = FromTexts(state.Archive.Entries)
	}

	newPrimary, newArchive, moved := Redistribute(
		entries, archiveEntries, ctx.Retention, state.Prefix, Archive.Prefix())

	state.Entries = EntryTexts(newPrimary)
	state.RenderedPrimary = Serialize(state.Header, newPrimary, state.Footer)

	if moved {
		if state.Archive == nil {
			state.Archive = &pipeline.ArchiveState{
				Filename: filepath.Join(ctx.Cwd, p.ArchivePath),
				Prefix:   Archive.Prefix(),
				Header:   DefaultArchiveHeader,
			}
		}
		state.Archive.Entries = EntryTexts(newArchive)
		state.RenderedArchive = Serialize(state.Archive.Header, newArchive, state.Archive.Footer)
	}

	if err := p.writeDocument(ctx, state.Filename, state.RenderedPrimary); err != nil {
		return err
	}
	if moved {
		if err := p.writeDocument(ctx, state.Archive.Filename, state.RenderedArchive); err != nil {
			return err
		}
	}

	return nil
}

// writeDocument writes serialized text with a terminal newline, recording
// the file as changed. Dry runs record nothing and write nothing.
func (p *Plugin) writeDocument(ctx *pipeline.Context, path, text string) error {
	if ctx.DryRun {
		return nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if rel, err := filepath.Rel(ctx.Cwd, path); err == nil {
		ctx.ChangedFiles = append(ctx.ChangedFiles, rel)
	}
	return nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
