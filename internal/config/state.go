package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// UIState is the per-workspace UI state persisted in .scribe/state.json.
// Open tabs are deliberately not persisted; every launch starts with the
// welcome screen.
type UIState struct {
	ShowTree  bool   `json:"show_tree"`
	TreeWidth int    `json:"tree_width,omitempty"`
	Theme     string `json:"theme,omitempty"`
}

// DefaultState returns the default UI state.
func DefaultState() UIState {
	return UIState{
		ShowTree:  true,
		TreeWidth: 30,
	}
}

// StateStore handles UI state persistence.
type StateStore struct {
	path string
}

// NewStateStore creates a store that persists to the given workspace.
func NewStateStore(workspacePath string) *StateStore {
	return &StateStore{
		path: filepath.Join(workspacePath, ".scribe", "state.json"),
	}
}

// Load reads the UI state from disk. A missing file yields the defaults.
func (s *StateStore) Load() (UIState, error) {
	state := DefaultState()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, err
	}

	if err := json.Unmarshal(data, &state); err != nil {
		return DefaultState(), err
	}

	return state, nil
}

// Save writes the UI state to disk.
func (s *StateStore) Save(state UIState) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}
