// Package config loads editor configuration from flags and config.toml and
// persists per-workspace UI state.
package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	WorkspacePath string
	Listen        string
	Serve         bool
	Theme         string
	TreeWidth     int
	ShowTree      bool
	SystemClip    bool
}

func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		WorkspacePath: filepath.Join(home, "src"),
		Listen:        ":2222",
		Serve:         false,
		Theme:         "catppuccin",
		TreeWidth:     30,
		ShowTree:      true,
		SystemClip:    true,
	}
}
