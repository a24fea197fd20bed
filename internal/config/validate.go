package config

import "fmt"

// Validate checks a loaded configuration for unusable values.
func Validate(cfg *Configuration) error {
	if cfg.Changelog.Retention < 0 {
		return fmt.Errorf("changelog.retention must be >= 0, got %d", cfg.Changelog.Retention)
	}
	if cfg.Changelog.Path == "" && cfg.Changelog.EmbeddedPath == "" {
		return fmt.Errorf("changelog.path and changelog.embedded_path cannot both be empty")
	}
	if cfg.Changelog.OldPath == "" {
		return fmt.Errorf("changelog.old_path cannot be empty")
	}
	if cfg.Manifest.Path == "" {
		return fmt.Errorf("manifest.path cannot be empty")
	}
	return nil
}
