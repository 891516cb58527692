package gcal

import (
	"encoding/json"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the user's own config
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, err
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
