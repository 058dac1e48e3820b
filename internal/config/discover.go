package config

import (
	"errors"
	"os"
	"path/filepath"
)

// AppName names the per-user configuration directory.
const AppName = "msyskit"

// ProjectFileNames are the settings files searched for in the working
// directory and its parents, in priority order.
var ProjectFileNames = []string{
	".msyskit.json",
	".msyskit.yaml",
	".msyskit.yml",
	".msyskit.toml",
}

// UserFileNames are the settings files searched for in the user config directory.
var UserFileNames = []string{
	"config.json",
	"config.yaml",
	"config.yml",
	"config.toml",
}

// ErrNoSettingsFile is returned when no settings file is found.
var ErrNoSettingsFile = errors.New("no msyskit settings file found")

// FindFileFrom walks up from startDir until it finds a project settings file.
func FindFileFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if path, ok := firstExisting(dir, ProjectFileNames); ok {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNoSettingsFile
		}
		dir = parent
	}
}

// UserConfigDir returns the per-user msyskit directory, honoring an explicit override.
func UserConfigDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// FindUserFile returns the first settings file in the user config directory.
func FindUserFile(configDir string) (string, error) {
	if path, ok := firstExisting(configDir, UserFileNames); ok {
		return path, nil
	}
	return "", ErrNoSettingsFile
}

func firstExisting(dir string, names []string) (string, bool) {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
