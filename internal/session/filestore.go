package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// storedSession is the on-disk shape of the durable session file. Only the
// token is persisted; the profile is always re-derived from it.
type storedSession struct {
	Token string `json:"token"`
}

// FileTokenStore persists the session token as a small JSON file, the
// client-side equivalent of browser local storage.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store writing to the given file path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load reads the stored token. A missing file is not an error; it simply
// means no session has been persisted yet.
func (f *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading session file: %w", err)
	}

	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return "", fmt.Errorf("parsing session file: %w", err)
	}

	return stored.Token, nil
}

// Save writes the token, creating parent directories as needed. The file is
// written with owner-only permissions since it holds a bearer credential.
func (f *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	data, err := json.Marshal(storedSession{Token: token})
	if err != nil {
		return fmt.Errorf("encoding session file: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}

	return nil
}

// Clear removes the stored token. Clearing an already-absent file succeeds.
func (f *FileTokenStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
