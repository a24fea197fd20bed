package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(entries ...Entry) *Document {
	return &Document{Path: "CHANGELOG.md", Role: Standalone, Entries: entries}
}

func placeholderEntry(body string) Entry {
	e := Entry{RawHeading: "## " + Placeholder, RawBody: body}
	classifyEntry(&e)
	return e
}

func releasedEntry(version, date string) Entry {
	e := Entry{RawHeading: "## " + version + " (" + date + ")", RawBody: "- change\n"}
	classifyEntry(&e)
	return e
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		doc      *Document
		problems []string
	}{
		"single placeholder with content is valid": {
			doc: doc(placeholderEntry("- pending\n"), releasedEntry("1.0.0", "2024-01-01")),
		},
		"zero entries is no changelog content, not an error": {
			doc: doc(),
		},
		"missing placeholder": {
			doc:      doc(releasedEntry("1.0.0", "2024-01-01")),
			problems: []string{"is missing"},
		},
		"more than one placeholder": {
			doc:      doc(placeholderEntry("- a\n"), placeholderEntry("- b\n")),
			problems: []string{"more than one"},
		},
		"empty placeholder body": {
			doc:      doc(placeholderEntry("")),
			problems: []string{"is empty"},
		},
		"whitespace-only placeholder body": {
			doc:      doc(placeholderEntry("   \n\t\n")),
			problems: []string{"is empty"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			problems := Validate(tc.doc)

			require.Len(t, problems, len(tc.problems))
			for i, want := range tc.problems {
				assert.Contains(t, problems[i], want)
			}
		})
	}
}

func TestClassifyEntry_PlaceholderWithReleaseName(t *testing.T) {
	e := Entry{RawHeading: "## " + Placeholder + " · Doomsday release"}
	classifyEntry(&e)

	assert.True(t, e.IsPlaceholder)
	assert.Empty(t, e.Version)
	assert.Empty(t, e.ReleaseDate)
}

func TestClassifyEntry_ReleasedVersionMetadata(t *testing.T) {
	e := Entry{RawHeading: "### 2.3.4-beta.1 (2024-06-01) · Nightly"}
	classifyEntry(&e)

	assert.False(t, e.IsPlaceholder)
	assert.Equal(t, "2.3.4-beta.1", e.Version)
	assert.Equal(t, "2024-06-01", e.ReleaseDate)
}

func TestFindPlaceholder(t *testing.T) {
	placeholder := placeholderEntry("- pending\n")
	released := releasedEntry("1.0.0", "2024-01-01")

	t.Run("single placeholder found with index", func(t *testing.T) {
		got, idx, ok := FindPlaceholder([]Entry{released, placeholder})
		require.True(t, ok)
		assert.Equal(t, 1, idx)
		assert.Equal(t, placeholder, got)
	})

	t.Run("no placeholder", func(t *testing.T) {
		_, _, ok := FindPlaceholder([]Entry{released})
		assert.False(t, ok)
	})

	t.Run("two placeholders is not resolvable", func(t *testing.T) {
		_, _, ok := FindPlaceholder([]Entry{placeholder, placeholder})
		assert.False(t, ok)
	})
}
