// Package session owns the persisted session slice and the role gate. The
// manager is an explicit object handed to whoever needs it; there is no
// ambient singleton.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"JobLane-client/internal/model"
)

// Manager persists the signed-in user to a local state file across restarts
// (the durable-storage analog). Only the session slice is persisted; every
// other domain is refetched on each start.
type Manager struct {
	mu   sync.Mutex
	path string
	user *model.User
}

// NewManager builds a manager persisting to path.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Hydrate loads the persisted session if one exists. A missing file is not
// an error; the user simply starts signed out.
func (m *Manager) Hydrate() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		// A corrupt session file is discarded rather than surfaced.
		m.user = nil
		return nil
	}
	m.user = &u
	return nil
}

// Set stores the signed-in user and persists it.
func (m *Manager) Set(u model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &u

	raw, err := json.Marshal(u)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(m.path, raw, 0o600)
}

// Clear signs the user out and removes the persisted file. Called on logout
// and on any auth failure surfaced by the HTTP layer.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	_ = os.Remove(m.path)
}

// User returns the hydrated or signed-in user, nil when signed out.
func (m *Manager) User() *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}
