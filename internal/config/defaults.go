package config

import "github.com/knadh/koanf/v2"

// Defaults returns the built-in configuration values keyed by dotted path.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"changelog.path":          "CHANGELOG.md",
		"changelog.embedded_path": "README.md",
		"changelog.old_path":      "CHANGELOG_OLD.md",
		"changelog.retention":     0,
		"manifest.path":           "package.json",
		"manifest.sync_cmd":       "",
		"manifest.lockfile":       "package-lock.json",
		"git.enabled":             true,
		"git.push":                true,
		"git.remote":              "origin",
		"git.tag_prefix":          "v",
		"dry_run":                 false,
	}
}

// loadDefaults seeds the koanf instance with the built-in defaults.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range Defaults() {
		k.Set(key, value)
	}
}

// GetDefaultConfigTemplate returns a fully commented config template that
// helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# Shiplog Configuration
# Values here are overridden by SHIPLOG_* environment variables.

# Changelog documents
changelog:
  path: CHANGELOG.md            # Dedicated changelog file, tried first
  embedded_path: README.md      # File with a nested changelog section, used as fallback
  old_path: CHANGELOG_OLD.md    # Archive for entries evicted by retention
  retention: 0                  # Entries kept in the primary document (0 = all)

# Package descriptor
manifest:
  path: package.json            # JSON descriptor holding the version field
  sync_cmd: ""                  # Lockfile sync command, e.g. "npm install --package-lock-only"
  lockfile: package-lock.json   # File the sync command rewrites, committed with the release

# Git integration
git:
  enabled: true                 # Create the release commit and tag
  push: true                    # Push commit and tag after the release
  remote: origin                # Push target
  tag_prefix: v                 # Tag name prefix

dry_run: false                  # Compute everything, write nothing
`
}
