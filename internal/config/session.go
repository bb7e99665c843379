package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
)

// SessionFileName is the name of the session file.
const SessionFileName = "Session.toml"

// Session is state persisted across runs.
type Session struct {
	// RefreshToken is the OAuth refresh token from the last authorisation.
	RefreshToken string `toml:"refresh_token"`
	// DeviceID identifies this installation to the remote service.
	DeviceID string `toml:"device_id"`
}

// SessionPath returns the session file location:
// $XDG_STATE_HOME/ravana/Session.toml, else ~/.ravana/Session.toml.
func SessionPath() (string, error) {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "ravana", SessionFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(home, ".ravana", SessionFileName), nil
}

// LoadSession reads the session at path. A missing file yields an empty
// session.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("reading session %s: %w", path, err)
	}

	var s Session
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing session %s: %w", path, err)
	}
	return &s, nil
}

// Save writes the session to path, creating its directory.
func (s *Session) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing session %s: %w", path, err)
	}
	return nil
}

// EnsureDeviceID assigns a random device id if none is set. It reports
// whether the session changed.
func (s *Session) EnsureDeviceID() bool {
	if _, err := uuid.Parse(s.DeviceID); err == nil {
		return false
	}
	s.DeviceID = uuid.NewString()
	return true
}

// Authorized reports whether a refresh token is stored.
func (s *Session) Authorized() bool {
	return s.RefreshToken != ""
}
