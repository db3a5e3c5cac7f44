package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// systemPath is the last place Discover looks.
var systemPath = "/etc/reelcat/config.toml"

// DefaultPath returns the XDG-compliant per-user config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "reelcat", "config.toml")
}

// Discover returns the absolute path of the config file to load.
//
// An explicit path (the --config flag) wins, then REELCAT_CONFIG; both
// expand a leading ~ and must exist. Otherwise the first existing file of
// ./config.toml, DefaultPath() and /etc/reelcat/config.toml is used.
func Discover(explicit string) (string, error) {
	if explicit != "" {
		return resolveExisting("--config", explicit)
	}
	if envPath := os.Getenv("REELCAT_CONFIG"); envPath != "" {
		return resolveExisting("REELCAT_CONFIG", envPath)
	}

	paths := []string{"./config.toml", DefaultPath(), systemPath}
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return filepath.Abs(p)
		}
	}
	return "", fmt.Errorf("config not found, checked: %s (run 'reelcat init' to create one)", strings.Join(paths, ", "))
}

func resolveExisting(source, path string) (string, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return "", fmt.Errorf("%s=%s: %w", source, path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("%s=%s: %w", source, path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%s=%s: %w", source, path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s=%s: is a directory", source, path)
	}
	return abs, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
