package config

import (
	"os"
	"path/filepath"
)

const (
	EnvConfigPath  = "CUBEMESH_CONFIG"
	ConfigFileName = "cubemesh.yaml"
	ConfigDirName  = "cubemesh"
)

// searchPaths lists the candidate config files, highest priority first.
func searchPaths() []string {
	paths := make([]string, 0, 4)
	if env := os.Getenv(EnvConfigPath); env != "" {
		paths = append(paths, env)
	}
	paths = append(paths, ConfigFileName)
	if dir, ok := userConfigDir(); ok {
		paths = append(paths, filepath.Join(dir, ConfigDirName, "config.yaml"))
	}
	return paths
}

// userConfigDir is $XDG_CONFIG_HOME, falling back to ~/.config.
func userConfigDir() (string, bool) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, true
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config"), true
	}
	return "", false
}

// FindConfigPath returns the first existing config file in search order, or "" if there is none.
func FindConfigPath() string {
	for _, path := range searchPaths() {
		if !fileExists(path) {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	}
	return ""
}

// UserConfigPath is where a per-user config is written (and the last place FindConfigPath looks).
func UserConfigPath() string {
	if dir, ok := userConfigDir(); ok {
		return filepath.Join(dir, ConfigDirName, "config.yaml")
	}
	return ConfigFileName
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
