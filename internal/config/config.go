package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the lifeos configuration.
type Config struct {
	SpecFile       string `toml:"spec_file"`       // layout spec for doctor/init
	DesktopDir     string `toml:"desktop_dir"`     // tidied for screenshots
	DownloadsDir   string `toml:"downloads_dir"`   // tidied for stale items
	ScreenshotsDir string `toml:"screenshots_dir"` // where screenshots get moved
}

// Default returns the default configuration with every path still in
// its ~-prefixed form; Load expands them.
func Default() Config {
	return Config{
		SpecFile:       "~/System/lifeos/spec.json",
		DesktopDir:     "~/Desktop",
		DownloadsDir:   "~/Downloads",
		ScreenshotsDir: "~/Documents/screenshots",
	}
}

// ValidatePath checks that the path is absolute or starts with ~.
// Relative paths like "." or ".." are rejected so a run never depends
// on the working directory.
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // empty falls back to the default
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lifeos", "config.toml"), nil
}

// Load reads config from ~/.config/lifeos/config.toml.
// Returns Default() (expanded) if the file doesn't exist; returns an
// error only if the file exists but is invalid. All path fields in the
// result are absolute.
func Load() (Config, error) {
	cfg := Default()

	path, err := configPath()
	if err == nil {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// keep defaults
		case err != nil:
			return Default(), fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Default(), fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	def := Default()
	fields := []struct {
		name  string
		value *string
		def   string
	}{
		{"spec_file", &cfg.SpecFile, def.SpecFile},
		{"desktop_dir", &cfg.DesktopDir, def.DesktopDir},
		{"downloads_dir", &cfg.DownloadsDir, def.DownloadsDir},
		{"screenshots_dir", &cfg.ScreenshotsDir, def.ScreenshotsDir},
	}
	for _, f := range fields {
		if *f.value == "" {
			*f.value = f.def
		}
		if err := ValidatePath(*f.value, f.name); err != nil {
			return Default(), err
		}
		expanded, err := expandPath(*f.value)
		if err != nil {
			return Default(), fmt.Errorf("expand %s: %w", f.name, err)
		}
		*f.value = expanded
	}

	return cfg, nil
}

const defaultConfig = `# lifeos configuration

# Layout spec file checked by "lifeos doctor" and created by "lifeos init".
# Must be an absolute path or start with ~ (no relative paths).
# spec_file = "~/System/lifeos/spec.json"

# Directories tidied by "lifeos tidy". Screenshots on the desktop are
# moved to screenshots_dir; non-hidden downloads items older than 7 days
# are deleted with --apply.
# desktop_dir = "~/Desktop"
# downloads_dir = "~/Downloads"
# screenshots_dir = "~/Documents/screenshots"
`

// Init creates a default config file at ~/.config/lifeos/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
