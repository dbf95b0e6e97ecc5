// Package save keeps the player's best score between sessions.
//
// The record is a small JSON document, {"highscore": N}, stored either in a
// plain file or in the per-user application data directory.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/quasilyte/gdata"
)

// AppName is the application data namespace used by the gdata backend.
const AppName = "tui-platformer"

// DefaultPath is where the file backend keeps its record when no path is given.
const DefaultPath = "~/.platformer/save_data.json"

// Record is the persisted save data.
type Record struct {
	HighScore int `json:"highscore"`
}

// Backend reads and writes a Record.
type Backend interface {
	Load() (Record, error)
	Save(Record) error
}

// FileBackend stores the record as JSON at Path.
type FileBackend struct {
	Path string
}

// Load reads the record. A missing file is an empty record.
func (b FileBackend) Load() (Record, error) {
	data, err := os.ReadFile(b.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("save: cannot read %s: %w", b.Path, err)
	}
	return decode(data)
}

// Save writes the record, creating parent directories as needed.
func (b FileBackend) Save(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("save: cannot encode record: %w", err)
	}

	if dir := filepath.Dir(b.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(b.Path, data, 0o600); err != nil {
		return fmt.Errorf("save: cannot write %s: %w", b.Path, err)
	}
	return nil
}

// GdataBackend stores the record as a gdata item.
type GdataBackend struct {
	m    *gdata.Manager
	item string
}

// OpenGdata opens the application data store for appName.
func OpenGdata(appName string) (*GdataBackend, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("save: cannot open app data: %w", err)
	}
	return &GdataBackend{m: m, item: "highscore"}, nil
}

// Load reads the record. A missing item is an empty record.
func (b *GdataBackend) Load() (Record, error) {
	data, err := b.m.LoadItem(b.item)
	if err != nil {
		return Record{}, fmt.Errorf("save: cannot load item %q: %w", b.item, err)
	}
	if len(data) == 0 {
		return Record{}, nil
	}
	return decode(data)
}

// Save writes the record.
func (b *GdataBackend) Save(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("save: cannot encode record: %w", err)
	}
	if err := b.m.SaveItem(b.item, data); err != nil {
		return fmt.Errorf("save: cannot save item %q: %w", b.item, err)
	}
	return nil
}

func decode(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("save: cannot parse record: %w", err)
	}
	return r, nil
}

// NewBackend returns the backend named by kind ("file" or "gdata").
// The file backend expands a leading ~ in path and falls back to DefaultPath.
func NewBackend(kind, path string) (Backend, error) {
	switch kind {
	case "", "file":
		if path == "" {
			path = DefaultPath
		}
		expanded, err := expandHome(path)
		if err != nil {
			return nil, err
		}
		return FileBackend{Path: expanded}, nil
	case "gdata":
		return OpenGdata(AppName)
	default:
		return nil, fmt.Errorf("save: unknown backend %q (want file or gdata)", kind)
	}
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("save: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
