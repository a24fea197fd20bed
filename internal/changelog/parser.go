package changelog

import "strings"

// Parse splits raw document text into header, ordered entries, and footer.
//
// A line starts a new entry iff it begins with the exact heading-prefix
// literal (marker characters plus one space). The header is everything
// before the first such line, kept verbatim. Each entry spans from its
// heading line to the line before the next matching heading. Inside the
// last entry's span, the first line that looks like a heading but carries a
// different prefix terminates the entry body; the remainder, trimmed of a
// single leading run of blank lines, is the footer. Headings with a
// non-matching prefix anywhere else are never split points.
//
// A document with no matching heading line parses as header-only with zero
// entries; the caller decides whether that is an error.
func Parse(text, prefix string) (header string, entries []Entry, footer string) {
	lines := splitLines(text)

	// Two states: outside any entry (accumulating the header) and inside
	// an entry span. A matching heading line always flips to inside and
	// starts a new span.
	var spans [][]string
	var head []string
	inside := false

	for _, line := range lines {
		switch {
		case isEntryHeading(line, prefix):
			spans = append(spans, []string{line})
			inside = true
		case inside:
			spans[len(spans)-1] = append(spans[len(spans)-1], line)
		default:
			head = append(head, line)
		}
	}

	header = strings.Join(head, "")
	if len(spans) == 0 {
		return header, nil, ""
	}

	for i, span := range spans {
		body := span[1:]
		if i == len(spans)-1 {
			body, footer = splitFooter(body)
		}
		e := Entry{
			RawHeading: strings.TrimRight(span[0], "\n"),
			RawBody:    strings.Join(body, ""),
		}
		classifyEntry(&e)
		entries = append(entries, e)
	}

	return header, entries, footer
}

// splitFooter cuts the last entry's body at the first heading line whose
// prefix does not match the entry prefix. Only this true trailing section
// becomes the footer; it is trimmed of one leading run of blank lines.
func splitFooter(body []string) (entryBody []string, footer string) {
	for i, line := range body {
		if looksLikeHeading(line) {
			return body[:i], trimLeadingBlankLines(strings.Join(body[i:], ""))
		}
	}
	return body, ""
}

// splitLines splits text into lines, each keeping its trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// isEntryHeading reports whether the line begins with the exact entry
// prefix. Longer marker runs do not match: the character after the marker
// run must be the prefix's own space.
func isEntryHeading(line, prefix string) bool {
	return strings.HasPrefix(line, prefix)
}

// looksLikeHeading reports whether the line is a Markdown heading of any
// depth: one or more marker characters followed by a space.
func looksLikeHeading(line string) bool {
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	return i > 0 && i < len(line) && line[i] == ' '
}

// trimLeadingBlankLines removes a single leading run of blank lines.
func trimLeadingBlankLines(s string) string {
	for {
		line, rest, found := strings.Cut(s, "\n")
		if !found || strings.TrimSpace(line) != "" {
			return s
		}
		s = rest
	}
}
