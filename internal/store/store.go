// Package store keeps the CLI's local record of the tracing sessions it
// created. Records are bookkeeping for listing and defaulting only; the
// external tool remains the sole owner of session state and is never
// re-queried to reconcile.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"
	"time"
)

// Record describes one session this tool created.
type Record struct {
	Name      string    `json:"name"`
	Output    string    `json:"output,omitempty"` // empty means no output
	Domains   []string  `json:"domains,omitempty"`
	Channels  []string  `json:"channels,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	State     string    `json:"state"` // "created", "started", "stopped"
}

// State constants for the recorded session lifecycle.
const (
	StateCreated = "created"
	StateStarted = "started"
	StateStopped = "stopped"
)

// validName matches safe session names (alphanumeric with hyphens and
// underscores) so records never escape the store directory.
var validName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// Manager persists records as one JSON file per session.
type Manager struct {
	dir string
	mu  sync.RWMutex // protects file operations
}

// NewManager creates a record manager for the given directory.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Save writes or overwrites the record for rec.Name.
func (m *Manager) Save(rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked(rec)
}

// Get returns the record for a session name.
func (m *Manager) Get(name string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadLocked(name)
}

// List returns all records, most recently created first.
func (m *Manager) List() ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("reading store directory: %w", err)
	}

	records := make([]*Record, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		rec, err := m.loadLocked(entry.Name()[:len(entry.Name())-len(".json")])
		if err != nil {
			continue // Skip corrupted records
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// SetState updates the recorded lifecycle state of a session.
func (m *Manager) SetState(name, state string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.loadLocked(name)
	if err != nil {
		return err
	}
	rec.State = state
	return m.saveLocked(rec)
}

// AddChannel appends a channel name to a session's record.
func (m *Manager) AddChannel(name, domain, channel string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.loadLocked(name)
	if err != nil {
		return err
	}
	rec.Channels = append(rec.Channels, channel)
	rec.Domains = appendUnique(rec.Domains, domain)
	return m.saveLocked(rec)
}

// Delete removes a session's record.
func (m *Manager) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !validName.MatchString(name) {
		return fmt.Errorf("invalid session name: %s", name)
	}
	err := os.Remove(m.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (m *Manager) path(name string) string {
	return filepath.Join(m.dir, name+".json")
}

func (m *Manager) loadLocked(name string) (*Record, error) {
	if !validName.MatchString(name) {
		return nil, fmt.Errorf("invalid session name: %s", name)
	}
	data, err := os.ReadFile(m.path(name))
	if err != nil {
		return nil, fmt.Errorf("session record not found: %s", name)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshaling record %s: %w", name, err)
	}
	return &rec, nil
}

// saveLocked persists a record with the atomic write-rename pattern so a
// crash mid-write never leaves a corrupt record behind.
func (m *Manager) saveLocked(rec *Record) error {
	if !validName.MatchString(rec.Name) {
		return fmt.Errorf("invalid session name: %s", rec.Name)
	}
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}

	tmp := m.path(rec.Name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return os.Rename(tmp, m.path(rec.Name))
}

func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}
	return append(list, s)
}
