package changelog

import "strings"

// Placeholder is the sentinel title that marks the one unreleased,
// work-in-progress entry in a changelog document.
const Placeholder = "**WORK IN PROGRESS**"

// TitleSeparator separates the version field of an entry heading from the
// optional free-text release name that follows it.
const TitleSeparator = " · "

// Role identifies how a changelog document is laid out on disk. It is
// selected once at configuration time and determines the exact heading
// prefix that delimits top-level entries in the document.
type Role int

const (
	// Standalone is a dedicated changelog file whose entries are
	// second-level headings.
	Standalone Role = iota
	// Embedded is a changelog section nested inside a broader document
	// (typically a README), pushing entries one heading level deeper.
	Embedded
	// Archive is the secondary file holding older, already-released
	// entries evicted from the primary document.
	Archive
)

// Prefix returns the exact heading-prefix literal that delimits top-level
// entries for this document role, including the trailing space.
func (r Role) Prefix() string {
	if r == Embedded {
		return "### "
	}
	return "## "
}

// String returns a human-readable name for the document role.
func (r Role) String() string {
	switch r {
	case Standalone:
		return "standalone"
	case Embedded:
		return "embedded"
	case Archive:
		return "archive"
	default:
		return "unknown"
	}
}

// Document is one parsed changelog file. Header and Footer are the literal
// prefix and suffix substrings of the raw document that lie outside all
// entry spans.
type Document struct {
	Path    string
	Role    Role
	Header  string
	Entries []Entry
	Footer  string
}

// Prefix returns the document's heading-prefix literal.
func (d *Document) Prefix() string {
	return d.Role.Prefix()
}

// Entry is the verbatim text of a single changelog entry: one heading line
// plus everything up to, but excluding, the next heading at the same prefix
// level. Version and ReleaseDate are extracted from the heading when the
// entry is a released one; both are empty for the placeholder entry.
type Entry struct {
	RawHeading    string
	RawBody       string
	IsPlaceholder bool
	Version       string
	ReleaseDate   string
}

// Text returns the entry's verbatim text, heading line included.
func (e Entry) Text() string {
	if e.RawBody == "" {
		return e.RawHeading
	}
	return e.RawHeading + "\n" + e.RawBody
}

// Title returns the heading line's title field: the text after the heading
// prefix and before the free-text release name, if any.
func (e Entry) Title() string {
	title := strings.TrimLeft(e.RawHeading, "#")
	title = strings.TrimPrefix(title, " ")
	if idx := strings.Index(title, TitleSeparator); idx >= 0 {
		title = title[:idx]
	}
	return strings.TrimSpace(title)
}

// EntryTexts returns the verbatim text of each entry, preserving order.
// This is the form entries take in the pipeline context, where downstream
// collaborators may inspect or rewrite them as plain strings.
func EntryTexts(entries []Entry) []string {
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text()
	}
	return texts
}

// FromTexts rebuilds entries from their verbatim texts, re-deriving the
// placeholder flag and version metadata from each heading line.
func FromTexts(texts []string) []Entry {
	entries := make([]Entry, len(texts))
	for i, text := range texts {
		entries[i] = fromText(text)
	}
	return entries
}

// fromText splits an entry's verbatim text back into heading and body.
func fromText(text string) Entry {
	heading, body, _ := strings.Cut(text, "\n")
	e := Entry{RawHeading: heading, RawBody: body}
	classifyEntry(&e)
	return e
}
