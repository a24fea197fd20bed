package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryNamed(prefix, title string) Entry {
	return Entry{RawHeading: prefix + title, RawBody: "- " + title + "\n"}
}

func TestRedistribute_MovesExcessToArchiveFront(t *testing.T) {
	a := entryNamed("### ", "2.3.4 (2024-06-01)")
	b := entryNamed("### ", "2.3.3 (2024-05-01)")
	c := entryNamed("### ", "2.3.2 (2024-04-01)")
	d := entryNamed("## ", "2.3.1 (2024-03-01)")
	e := entryNamed("## ", "2.3.0 (2024-02-01)")

	newPrimary, newArchive, moved := Redistribute(
		[]Entry{a, b, c}, []Entry{d, e}, 2, "### ", "## ")

	assert.True(t, moved)
	assert.Equal(t, []Entry{a, b}, newPrimary)

	require.Len(t, newArchive, 3)
	assert.Equal(t, "## 2.3.2 (2024-04-01)", newArchive[0].RawHeading,
		"moved entry loses one heading-depth level")
	assert.Equal(t, c.RawBody, newArchive[0].RawBody, "bodies are never reprefixed")
	assert.Equal(t, d, newArchive[1])
	assert.Equal(t, e, newArchive[2])
}

func TestRedistribute_NoOpCases(t *testing.T) {
	primary := []Entry{
		entryNamed("## ", "1.1.0 (2024-02-01)"),
		entryNamed("## ", "1.0.0 (2024-01-01)"),
	}
	archive := []Entry{entryNamed("## ", "0.9.0 (2023-12-01)")}

	tests := map[string]struct {
		keep int
	}{
		"retention unset":              {keep: 0},
		"primary exactly at retention": {keep: 2},
		"primary below retention":      {keep: 5},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			newPrimary, newArchive, moved := Redistribute(primary, archive, tc.keep, "## ", "## ")

			assert.False(t, moved)
			assert.Equal(t, primary, newPrimary)
			assert.Equal(t, archive, newArchive, "archive is left untouched")
		})
	}
}

func TestRedistribute_SameDepthKeepsHeadingsVerbatim(t *testing.T) {
	primary := []Entry{
		entryNamed("## ", "1.2.0 (2024-03-01)"),
		entryNamed("## ", "1.1.0 (2024-02-01)"),
	}

	_, newArchive, moved := Redistribute(primary, nil, 1, "## ", "## ")

	require.True(t, moved)
	require.Len(t, newArchive, 1)
	assert.Equal(t, "## 1.1.0 (2024-02-01)", newArchive[0].RawHeading)
}

func TestRedistribute_DoesNotMutateInputs(t *testing.T) {
	primary := []Entry{
		entryNamed("### ", "1.1.0 (2024-02-01)"),
		entryNamed("### ", "1.0.0 (2024-01-01)"),
	}
	archive := []Entry{entryNamed("## ", "0.9.0 (2023-12-01)")}

	_, _, moved := Redistribute(primary, archive, 1, "### ", "## ")

	require.True(t, moved)
	assert.Equal(t, "### 1.0.0 (2024-01-01)", primary[1].RawHeading)
	assert.Equal(t, "## 0.9.0 (2023-12-01)", archive[0].RawHeading)
}
