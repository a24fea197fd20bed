package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePlaceholder(t *testing.T) {
	tests := map[string]struct {
		heading     string
		wantHeading string
	}{
		"placeholder with release nickname": {
			heading:     "## **WORK IN PROGRESS** · Doomsday release",
			wantHeading: "## 2.3.4 (2024-06-01) · Doomsday release",
		},
		"bare placeholder": {
			heading:     "## **WORK IN PROGRESS**",
			wantHeading: "## 2.3.4 (2024-06-01)",
		},
		"embedded-section placeholder keeps its deeper prefix": {
			heading:     "### **WORK IN PROGRESS**",
			wantHeading: "### 2.3.4 (2024-06-01)",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			in := Entry{RawHeading: tc.heading, RawBody: "- one\n- two\n", IsPlaceholder: true}

			got := ResolvePlaceholder(in, "2.3.4", "2024-06-01")

			assert.Equal(t, tc.wantHeading, got.RawHeading)
			assert.Equal(t, in.RawBody, got.RawBody, "body lines are copied unchanged")
			assert.False(t, got.IsPlaceholder)
			assert.Equal(t, "2.3.4", got.Version)
			assert.Equal(t, "2024-06-01", got.ReleaseDate)
		})
	}
}

func TestResolvePlaceholder_IsPure(t *testing.T) {
	in := Entry{RawHeading: "## **WORK IN PROGRESS**", RawBody: "- pending\n", IsPlaceholder: true}

	_ = ResolvePlaceholder(in, "1.0.0", "2024-01-01")

	assert.Equal(t, "## **WORK IN PROGRESS**", in.RawHeading)
	assert.True(t, in.IsPlaceholder)
}

func TestResolvePlaceholder_NonPlaceholderUnchanged(t *testing.T) {
	in := Entry{RawHeading: "## 1.0.0 (2024-01-01)", RawBody: "- change\n"}

	got := ResolvePlaceholder(in, "2.0.0", "2024-06-01")

	assert.Equal(t, in, got)
}
