package changelog

import "strings"

// Redistribute partitions the primary document's entries at the retention
// count. The first keep entries, in their existing newest-first order, stay
// in the primary document; the excess is prepended, in order, ahead of the
// archive's pre-existing entries.
//
// Entries moving from a deeper primary prefix into a shallower archive
// prefix have exactly one marker character removed from their heading line;
// bodies are never reprefixed. Returns moved=false, with both lists
// unchanged, when no retention count is configured (keep <= 0) or the
// primary already fits.
//
// The function is pure: it performs no I/O and does not mutate its inputs.
func Redistribute(primary, archive []Entry, keep int, primaryPrefix, archivePrefix string) (newPrimary, newArchive []Entry, moved bool) {
	if keep <= 0 || len(primary) <= keep {
		return primary, archive, false
	}

	newPrimary = primary[:keep]

	excess := make([]Entry, 0, len(primary)-keep)
	for _, e := range primary[keep:] {
		excess = append(excess, adjustDepth(e, primaryPrefix, archivePrefix))
	}

	newArchive = make([]Entry, 0, len(excess)+len(archive))
	newArchive = append(newArchive, excess...)
	newArchive = append(newArchive, archive...)

	return newPrimary, newArchive, true
}

// adjustDepth renormalizes an entry heading when it crosses between
// documents of different nesting depth. Only the one-level-shallower move
// (embedded section into standalone archive) occurs in practice; every
// other character of the heading line is preserved verbatim.
func adjustDepth(e Entry, fromPrefix, toPrefix string) Entry {
	if len(fromPrefix) <= len(toPrefix) {
		return e
	}
	if strings.HasPrefix(e.RawHeading, "#") {
		e.RawHeading = e.RawHeading[1:]
	}
	return e
}
