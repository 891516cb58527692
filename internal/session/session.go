// Package session persists the logged-in user's identity across program
// runs: one JSON file under the config directory, read at startup, removed
// on logout.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/abatilo/taskdash/internal/api"
)

const sessionFile = "session.json"

// Session is the durable slot's contents.
type Session struct {
	User    api.User  `json:"user"`
	SavedAt time.Time `json:"saved_at"`
}

// sessionPath returns the full path to session.json for the given base path.
func sessionPath(basePath string) string {
	return filepath.Join(basePath, sessionFile)
}

// Exists checks if a session file exists.
func Exists(basePath string) bool {
	_, err := os.Stat(sessionPath(basePath))
	return err == nil
}

// Load reads the session from disk.
func Load(basePath string) (*Session, error) {
	data, err := os.ReadFile(sessionPath(basePath))
	if err != nil {
		return nil, err
	}

	var s Session
	if unmarshalErr := json.Unmarshal(data, &s); unmarshalErr != nil {
		return nil, unmarshalErr
	}

	return &s, nil
}

// Save writes the session to disk.
func Save(basePath string, user api.User) error {
	//nolint:gosec // G301: 0755 is appropriate for a user-accessible config directory
	if mkdirErr := os.MkdirAll(basePath, 0o755); mkdirErr != nil {
		return mkdirErr
	}

	s := Session{User: user, SavedAt: time.Now().UTC()}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	//nolint:gosec // G306: 0600 keeps the identity record user-only
	return os.WriteFile(sessionPath(basePath), data, 0o600)
}

// Delete removes the session file.
func Delete(basePath string) error {
	err := os.Remove(sessionPath(basePath))
	if os.IsNotExist(err) {
		return nil // Already logged out, not an error
	}
	return err
}
