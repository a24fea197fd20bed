package errors

import "fmt"

// Common error messages for the shiplog CLI.
// These templates ensure consistent, actionable error messages.

// NoChangelogFound creates the fatal error for a project with neither a
// current changelog nor an archive file at the expected paths.
func NoChangelogFound(candidates []string) *CLIError {
	return NewPrerequisiteError(
		"no changelog file found",
		fmt.Sprintf("Create one of: %v", candidates),
		"Or point changelog.path at your changelog file in .shiplog/config.yml",
	)
}

// ChangelogInvalid creates the error that blocks a release when the check
// stage accumulated validation problems.
func ChangelogInvalid(problems []string) *CLIError {
	return NewValidationError(
		"the changelog is not ready for a release",
		problems,
		"Fix the problems above, then run 'shiplog release' again",
		"Use 'shiplog check' to re-validate without releasing",
	)
}

// MissingManifest creates an error for a missing package manifest.
func MissingManifest(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("package manifest not found at %s", path),
		"Run shiplog from the project root",
		"Or set manifest.path in .shiplog/config.yml",
	)
}

// InvalidVersionSpec creates an error for an unusable version argument.
func InvalidVersionSpec(spec string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid version %q", spec),
		"Pass an explicit semver version such as 1.2.3",
		"Or one of the bump keywords: major, minor, patch",
	)
}

// NotARepository creates an error for running git stages outside a repository.
func NotARepository(dir string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("%s is not inside a git repository", dir),
		"Run shiplog inside the repository you are releasing",
		"Or disable git integration with git.enabled: false",
	)
}

// DirtyWorktree creates an error for uncommitted changes before a release.
func DirtyWorktree() *CLIError {
	return NewPrerequisiteError(
		"the git worktree has uncommitted changes",
		"Commit or stash your changes before releasing",
	)
}
