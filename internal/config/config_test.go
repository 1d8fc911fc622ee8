package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultMatchesCaptionDefaults(t *testing.T) {
	cfg := Default()

	cc := cfg.CaptionConfig()
	if err := cc.Validate(); err != nil {
		t.Fatalf("default caption config is invalid: %v", err)
	}
	if cc.CharsPerSecond != 5 {
		t.Errorf("chars per second = %v, want 5", cc.CharsPerSecond)
	}
	if cc.MinDuration != 2*time.Second {
		t.Errorf("min duration = %v, want 2s", cc.MinDuration)
	}
	if cc.MaxDuration != 8*time.Second {
		t.Errorf("max duration = %v, want 8s", cc.MaxDuration)
	}
	if cc.Gap != 300*time.Millisecond {
		t.Errorf("gap = %v, want 300ms", cc.Gap)
	}
	if cc.MaxFragmentLen != 100 {
		t.Errorf("max fragment len = %d, want 100", cc.MaxFragmentLen)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", cfg.Provider)
	}
}

func TestLoadOverridesOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cuegen.yaml")
	body := `provider: anthropic
timing:
  chars_per_second: 7
  min_duration: 2
  max_duration: 8
  gap: 0.3
  max_fragment_len: 100
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Timing.CharsPerSecond != 7 {
		t.Errorf("chars per second = %v, want 7", cfg.Timing.CharsPerSecond)
	}
	// untouched sections keep defaults
	if cfg.Refine.MaxAttempts != 5 {
		t.Errorf("refine max attempts = %d, want default 5", cfg.Refine.MaxAttempts)
	}
	if cfg.MinInterval() != 3*time.Second {
		t.Errorf("min interval = %v, want default 3s", cfg.MinInterval())
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cuegen.yaml")
	if err := os.WriteFile(path, []byte("provider: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
