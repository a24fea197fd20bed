package changelog

import "strings"

// Serialize reassembles header, entries, and footer into final document
// text. Parts are separated from their neighbors by exactly one blank
// line; runs of blank lines at part boundaries collapse to one. Interior
// blank lines inside a part are left alone, keeping entry bodies verbatim.
//
// Parsing the result with the same heading prefix reproduces the same
// header, entries, and footer for already-normalized input.
func Serialize(header string, entries []Entry, footer string) string {
	parts := make([]string, 0, len(entries)+2)
	if h := trimBlankEdges(header); h != "" {
		parts = append(parts, h)
	}
	for _, e := range entries {
		if t := trimBlankEdges(e.Text()); t != "" {
			parts = append(parts, t)
		}
	}
	if f := trimBlankEdges(footer); f != "" {
		parts = append(parts, f)
	}
	return strings.Join(parts, "\n\n")
}

// trimBlankEdges removes leading and trailing runs of blank lines.
func trimBlankEdges(s string) string {
	lines := splitLines(s)

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	return strings.TrimRight(strings.Join(lines[start:end], ""), "\n")
}
