// Package persist is the bridge between the in-memory store and disk.
// The whole state travels as one JSON blob under one fixed path; no
// partial writes, no versioning.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tavola-pos/dashboard/internal/domain"
)

// DefaultFileName is the fixed key the snapshot lives under.
const DefaultFileName = "tavola-dashboard.json"

// Snapshot is the serialized form of the store's three collections.
type Snapshot struct {
	MenuItems []domain.MenuItem `json:"menu_items"`
	Tables    []domain.Table    `json:"tables"`
	Orders    []domain.Order    `json:"orders"`
}

// Bridge loads and saves the full snapshot. Load returning (nil, nil)
// means "no prior state" and the caller should seed fresh.
type Bridge interface {
	Load() (*Snapshot, error)
	Save(snap *Snapshot) error
}

// FileBridge stores the snapshot as a single JSON file.
type FileBridge struct {
	path string
}

// NewFileBridge creates a bridge writing to the given path.
func NewFileBridge(path string) *FileBridge {
	return &FileBridge{path: path}
}

// Load reads the snapshot. A missing or unreadable file yields
// (nil, nil): per the error model, load failures mean fresh seed
// data, never a crash.
func (b *FileBridge) Load() (*Snapshot, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		// Missing or unreadable file both mean "no prior state".
		return nil, nil
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Corrupt blob: treat as no prior state.
		return nil, nil
	}
	return &snap, nil
}

// Save writes the whole snapshot in one shot. Callers fire and
// forget; a returned error is logged and swallowed upstream.
func (b *FileBridge) Save(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
