// Package config provides hierarchical configuration management for shiplog
// using koanf. Configuration is loaded with priority: environment variables
// > project config (.shiplog/config.yml) > user config
// (~/.config/shiplog/config.yml) > defaults. Legacy JSON project configs
// (.shiplog/config.json) are still read for projects that have not migrated.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the shiplog CLI tool configuration.
type Configuration struct {
	// Changelog configures the documents the merge engine operates on.
	Changelog ChangelogConfig `koanf:"changelog"`
	// Manifest configures the JSON package descriptor.
	Manifest ManifestConfig `koanf:"manifest"`
	// Git configures release commit, tag, and push behavior.
	Git GitConfig `koanf:"git"`
	// DryRun makes every run compute without writing. Usually set per
	// invocation with --dry-run; the config key exists for CI setups.
	DryRun bool `koanf:"dry_run"`
}

// ChangelogConfig holds the changelog engine settings.
type ChangelogConfig struct {
	// Path is the dedicated changelog file, tried first.
	Path string `koanf:"path"`
	// EmbeddedPath is the broader document holding the changelog as a
	// nested section, used when Path does not exist.
	EmbeddedPath string `koanf:"embedded_path"`
	// OldPath is the archive file for entries evicted by retention.
	OldPath string `koanf:"old_path"`
	// Retention is the number of entries kept in the primary document.
	// Zero keeps everything.
	Retention int `koanf:"retention"`
}

// ManifestConfig holds the package descriptor settings.
type ManifestConfig struct {
	Path string `koanf:"path"`
	// SyncCmd is run after the version is rewritten to bring the
	// lockfile up to date. Empty disables it.
	SyncCmd string `koanf:"sync_cmd"`
	// Lockfile is the file SyncCmd rewrites, included in the release
	// commit when the sync ran.
	Lockfile string `koanf:"lockfile"`
}

// GitConfig holds the git integration settings.
type GitConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Push      bool   `koanf:"push"`
	Remote    string `koanf:"remote"`
	TagPrefix string `koanf:"tag_prefix"`
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("SHIPLOG_", ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadUserConfig merges the XDG user config when it exists.
func loadUserConfig(k *koanf.Koanf) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	path := filepath.Join(home, ".config", "shiplog", "config.yml")
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading user config %s: %w", path, err)
	}
	return nil
}

// loadProjectConfig merges the project config, preferring YAML and falling
// back to the legacy JSON format.
func loadProjectConfig(k *koanf.Koanf, path string) error {
	if path == "" {
		path = filepath.Join(".shiplog", "config.yml")
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return fmt.Errorf("loading project config %s: %w", path, err)
		}
		return nil
	}

	legacy := filepath.Join(filepath.Dir(path), "config.json")
	if _, err := os.Stat(legacy); err == nil {
		if err := k.Load(file.Provider(legacy), json.Parser()); err != nil {
			return fmt.Errorf("loading project config %s: %w", legacy, err)
		}
	}
	return nil
}

// parserFor selects the koanf parser by file extension.
func parserFor(path string) koanf.Parser {
	if strings.HasSuffix(path, ".json") {
		return json.Parser()
	}
	return yaml.Parser()
}

// envKeyMapper maps SHIPLOG_CHANGELOG_OLD_PATH to changelog.old_path.
// Only the underscore after a known section name is a separator; the rest
// of the key keeps its underscores (old_path, sync_cmd, dry_run).
func envKeyMapper(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, "SHIPLOG_"))
	for _, section := range []string{"changelog_", "manifest_", "git_"} {
		if strings.HasPrefix(key, section) {
			return strings.Replace(key, "_", ".", 1)
		}
	}
	return key
}
