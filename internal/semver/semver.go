// Package semver provides the version-resolution collaborator for release
// runs: parsing of semantic versions, bump computation, and release date
// selection. The changelog engine never chooses a version or date itself;
// it substitutes the values this package resolves.
package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// semverPattern matches bare X.Y.Z versions with optional pre-release and
// build metadata.
var semverPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-([a-zA-Z0-9.-]+))?(?:\+([a-zA-Z0-9.-]+))?$`)

// Version is a parsed semantic version.
type Version struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

// Parse parses a bare semantic version string. A leading "v" is accepted
// and stripped, so both "v0.6.0" and "0.6.0" are valid input.
func Parse(s string) (Version, error) {
	m := semverPattern.FindStringSubmatch(Normalize(s))
	if m == nil {
		return Version{}, fmt.Errorf("invalid semver format %q (expected: X.Y.Z)", s)
	}

	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return Version{Major: major, Minor: minor, Patch: patch, Pre: m[4], Build: m[5]}, nil
}

// IsValid reports whether s parses as a semantic version.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Normalize normalizes a version string by removing a leading "v" or "V".
// The rest of the string is untouched: pre-release and build identifiers
// are case-sensitive and must survive resolution byte for byte.
func Normalize(version string) string {
	if strings.HasPrefix(version, "v") || strings.HasPrefix(version, "V") {
		return version[1:]
	}
	return version
}

// String renders the version in canonical form.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// Bump returns the version bumped by kind ("major", "minor", or "patch").
// Pre-release and build metadata are cleared by any bump.
func (v Version) Bump(kind string) (Version, error) {
	switch kind {
	case "major":
		return Version{Major: v.Major + 1}, nil
	case "minor":
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case "patch":
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return Version{}, fmt.Errorf("unknown bump kind %q", kind)
	}
}

// Resolve computes the release version from the current manifest version
// and a version spec: either an explicit semver version or one of the bump
// keywords major, minor, patch.
func Resolve(current, spec string) (string, error) {
	switch spec {
	case "major", "minor", "patch":
		cur, err := Parse(current)
		if err != nil {
			return "", fmt.Errorf("current version: %w", err)
		}
		next, err := cur.Bump(spec)
		if err != nil {
			return "", err
		}
		return next.String(), nil
	default:
		next, err := Parse(spec)
		if err != nil {
			return "", err
		}
		return next.String(), nil
	}
}

// Today returns today's date in the ISO form used by release headings.
func Today() string {
	return time.Now().Format("2006-01-02")
}
