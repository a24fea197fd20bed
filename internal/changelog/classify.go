package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// releasedHeadingRegex extracts the version and release date from the
// heading of an already-released entry, e.g. "## 1.2.3 (2024-01-15)".
var releasedHeadingRegex = regexp.MustCompile(`^#+ (\d+\.\d+\.\d+(?:-[a-zA-Z0-9.-]+)?(?:\+[a-zA-Z0-9.-]+)?) \((\d{4}-\d{2}-\d{2})\)`)

// classifyEntry fills the placeholder flag and version metadata from the
// entry's heading line.
func classifyEntry(e *Entry) {
	if e.Title() == Placeholder {
		e.IsPlaceholder = true
		e.Version = ""
		e.ReleaseDate = ""
		return
	}
	e.IsPlaceholder = false
	if m := releasedHeadingRegex.FindStringSubmatch(e.RawHeading); m != nil {
		e.Version = m[1]
		e.ReleaseDate = m[2]
	}
}

// Validate checks placeholder cardinality and non-emptiness for a primary
// changelog document. All applicable problems are returned together so one
// run surfaces every issue; none of them stops classification of the
// remaining entries.
//
// A document with zero entries is "no changelog content", not an error.
func Validate(doc *Document) []string {
	if len(doc.Entries) == 0 {
		return nil
	}

	var problems []string
	var placeholders []Entry
	for _, e := range doc.Entries {
		if e.IsPlaceholder {
			placeholders = append(placeholders, e)
		}
	}

	switch {
	case len(placeholders) == 0:
		problems = append(problems, fmt.Sprintf(
			"the changelog placeholder %s is missing from %s", Placeholder, doc.Path))
	case len(placeholders) > 1:
		problems = append(problems, fmt.Sprintf(
			"%s contains more than one %s placeholder", doc.Path, Placeholder))
	}

	if len(placeholders) == 1 && strings.TrimSpace(placeholders[0].RawBody) == "" {
		problems = append(problems, fmt.Sprintf(
			"the changelog placeholder in %s is empty", doc.Path))
	}

	return problems
}

// FindPlaceholder returns the single placeholder entry and its index, or
// ok=false when the entry list has no placeholder or more than one.
func FindPlaceholder(entries []Entry) (Entry, int, bool) {
	found := -1
	for i, e := range entries {
		if !e.IsPlaceholder {
			continue
		}
		if found >= 0 {
			return Entry{}, -1, false
		}
		found = i
	}
	if found < 0 {
		return Entry{}, -1, false
	}
	return entries[found], found, true
}
