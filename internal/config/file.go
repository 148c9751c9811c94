package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config with pointer fields so we can distinguish
// "not set" from zero values when merging TOML.
type fileConfig struct {
	WorkspacePath *string `toml:"workspace_path"`
	Theme         *string `toml:"theme"`
	TreeWidth     *int    `toml:"tree_width"`
	ShowTree      *bool   `toml:"show_tree"`
	SystemClip    *bool   `toml:"system_clipboard"`
	Listen        *string `toml:"listen"`
}

// ConfigDir returns the scribe config directory, respecting XDG_CONFIG_HOME.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "scribe")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "scribe")
}

// ConfigPath returns the full path to config.toml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadFile reads config.toml and merges non-nil fields into cfg.
// Returns true if the file existed, false otherwise.
func LoadFile(cfg *Config) (bool, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return true, err
	}

	if fc.WorkspacePath != nil {
		cfg.WorkspacePath = ExpandHome(*fc.WorkspacePath)
	}
	if fc.Theme != nil {
		cfg.Theme = *fc.Theme
	}
	if fc.TreeWidth != nil {
		cfg.TreeWidth = *fc.TreeWidth
	}
	if fc.ShowTree != nil {
		cfg.ShowTree = *fc.ShowTree
	}
	if fc.SystemClip != nil {
		cfg.SystemClip = *fc.SystemClip
	}
	if fc.Listen != nil {
		cfg.Listen = *fc.Listen
	}

	return true, nil
}

// SaveFile writes a minimal config.toml with the given workspace path.
func SaveFile(workspacePath string) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Store with ~ for readability if under home dir.
	home, _ := os.UserHomeDir()
	display := workspacePath
	if home != "" && strings.HasPrefix(workspacePath, home+string(os.PathSeparator)) {
		display = "~" + workspacePath[len(home):]
	}

	fc := fileConfig{WorkspacePath: &display}
	f, err := os.Create(filepath.Join(dir, "config.toml"))
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(fc)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, _ := os.UserHomeDir()
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
