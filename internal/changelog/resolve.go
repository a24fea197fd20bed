package changelog

import "strings"

// ResolvePlaceholder rewrites the placeholder entry's heading with a
// concrete version and ISO release date, producing
//
//	<prefix> <version> (<date>) · <original-title-suffix>
//
// where the suffix is whatever free text followed the sentinel marker in
// the original heading (a release nickname, typically). Every character of
// the heading outside the sentinel is preserved verbatim and the body is
// copied unchanged. The transform is pure; the input entry is not mutated.
func ResolvePlaceholder(e Entry, version, date string) Entry {
	idx := strings.Index(e.RawHeading, Placeholder)
	if idx < 0 {
		return e
	}

	resolved := e
	resolved.RawHeading = e.RawHeading[:idx] + version + " (" + date + ")" + e.RawHeading[idx+len(Placeholder):]
	resolved.IsPlaceholder = false
	resolved.Version = version
	resolved.ReleaseDate = date
	return resolved
}
