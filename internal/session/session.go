package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cuegen/internal/content"
)

// Session is the working state of one content production run. It is
// persisted wholesale as JSON; the API key lives only in memory and is
// stripped by a dedicated redaction step at the save boundary.
type Session struct {
	Niche        string                `json:"niche,omitempty"`
	Topic        *content.Topic        `json:"topic,omitempty"`
	Script       *content.Script       `json:"script,omitempty"`
	Analysis     *content.Analysis     `json:"analysis,omitempty"`
	ImagePrompts []content.ImagePrompt `json:"image_prompts,omitempty"`
	Titles       []string              `json:"titles,omitempty"`
	CaptionsPath string                `json:"captions_path,omitempty"`
	UpdatedAt    time.Time             `json:"updated_at"`

	// runtime credential, never serialized
	APIKey string `json:"-"`
}

// DefaultPath places the session file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve config directory: %w", err)
	}
	return filepath.Join(dir, "cuegen", "session.json"), nil
}

// Load reads a session from path. A missing file yields a fresh empty
// session, not an error.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &s, nil
}

// Save writes the session to path, creating parent directories as
// needed. The stored form is always the redacted copy.
func (s *Session) Save(path string) error {
	s.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(s.redacted(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// redacted returns a copy with every credential field cleared. The
// json:"-" tag already excludes APIKey; this step keeps the exclusion
// explicit at the save boundary rather than relying on tags alone.
func (s *Session) redacted() Session {
	clean := *s
	clean.APIKey = ""
	return clean
}

// Clear removes the persisted session file. Missing files are fine.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}
