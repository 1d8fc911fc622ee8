package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cuegen/internal/content"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := &Session{
		Niche:  "senior health",
		Topic:  &content.Topic{Title: "Sleep after 60"},
		Script: &content.Script{Title: "T", Hook: "H", Scenes: []content.Scene{{Narration: "N"}}},
		Titles: []string{"A title"},
	}
	if err := s.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Niche != s.Niche {
		t.Errorf("niche = %q, want %q", loaded.Niche, s.Niche)
	}
	if loaded.Topic == nil || loaded.Topic.Title != "Sleep after 60" {
		t.Errorf("topic not preserved: %#v", loaded.Topic)
	}
	if loaded.Script == nil || len(loaded.Script.Scenes) != 1 {
		t.Errorf("script not preserved: %#v", loaded.Script)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set on save")
	}
}

func TestSaveNeverPersistsAPIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := &Session{
		Niche:  "tech",
		APIKey: "sk-super-secret-value",
	}
	if err := s.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading session file: %v", err)
	}
	if strings.Contains(string(data), "super-secret") {
		t.Error("persisted session contains the API key")
	}

	// the in-memory session keeps the key
	if s.APIKey != "sk-super-secret-value" {
		t.Error("Save must not mutate the in-memory credential")
	}
}

func TestLoadMissingFileReturnsEmptySession(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s == nil || s.Niche != "" || s.Script != nil {
		t.Errorf("expected fresh empty session, got %#v", s)
	}
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for corrupt session file")
	}
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := (&Session{Niche: "x"}).Save(path); err != nil {
		t.Fatal(err)
	}

	if err := Clear(path); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file should be removed")
	}

	// clearing again is not an error
	if err := Clear(path); err != nil {
		t.Errorf("Clear on missing file returned error: %v", err)
	}
}
