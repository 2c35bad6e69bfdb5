// Package history remembers which components were generated, newest first.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const maxEntries = 100

type Entry struct {
	Component string    `json:"component"`
	Source    string    `json:"source"` // preset path, or "flags"
	Bytes     int       `json:"bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is a JSON file of entries.
type Store struct {
	path string
	now  func() time.Time
}

// Open returns the store at ~/.landinggen/history.json.
func Open() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStore(filepath.Join(home, ".landinggen", "history.json")), nil
}

func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Load returns the entries. A missing or corrupt file reads as empty.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return []Entry{}, nil
	}
	return entries, nil
}

func (s *Store) Save(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Add prepends an entry, keeping at most maxEntries.
func (s *Store) Add(component, source string, size int) error {
	entries, err := s.Load()
	if err != nil {
		return err
	}
	entries = append([]Entry{{
		Component: component,
		Source:    source,
		Bytes:     size,
		CreatedAt: s.now(),
	}}, entries...)
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	return s.Save(entries)
}

// DeleteOld drops entries older than days and returns how many went.
func (s *Store) DeleteOld(days int) (int, error) {
	entries, err := s.Load()
	if err != nil {
		return 0, err
	}
	cutoff := s.now().AddDate(0, 0, -days)
	var kept []Entry
	for _, e := range entries {
		if !e.CreatedAt.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	if kept == nil {
		kept = []Entry{}
	}
	return len(entries) - len(kept), s.Save(kept)
}
