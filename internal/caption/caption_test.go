package caption

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGenerateKoreanRoundTrip(t *testing.T) {
	got, err := Generate("안녕하세요. 반갑습니다.", DefaultConfig())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	// both fragments are 6 runes; at 5 chars/sec that is 1.2s, which
	// clamps to the 2s minimum, and the second entry starts after the
	// 300ms gap
	want := "1\n" +
		"00:00:00,000 --> 00:00:02,000\n" +
		"안녕하세요.\n" +
		"\n" +
		"2\n" +
		"00:00:02,300 --> 00:00:04,300\n" +
		"반갑습니다.\n" +
		"\n"

	if got != want {
		t.Errorf("Generate() = %q, want %q", got, want)
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	got, err := Generate("", DefaultConfig())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got != "" {
		t.Errorf("Generate(\"\") = %q, want empty string", got)
	}
}

func TestGenerateOverlongSentenceBecomesTwoEntries(t *testing.T) {
	text := strings.Repeat("a", 60) + ", " + strings.Repeat("b", 60) + "."

	entries, err := Entries(text, DefaultConfig())
	if err != nil {
		t.Fatalf("Entries returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if !strings.HasSuffix(entries[0].Text, ",") {
		t.Errorf("first entry should retain trailing comma: %q", entries[0].Text)
	}
	if strings.HasSuffix(entries[1].Text, ",") {
		t.Errorf("second entry should not end with comma: %q", entries[1].Text)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero chars per second", func(c *Config) { c.CharsPerSecond = 0 }},
		{"negative chars per second", func(c *Config) { c.CharsPerSecond = -1 }},
		{"zero min duration", func(c *Config) { c.MinDuration = 0 }},
		{"max below min", func(c *Config) { c.MaxDuration = c.MinDuration - time.Millisecond }},
		{"negative gap", func(c *Config) { c.Gap = -time.Second }},
		{"zero fragment threshold", func(c *Config) { c.MaxFragmentLen = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			_, err := Generate("Some text.", cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v is not ErrInvalidConfig", err)
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig failed validation: %v", err)
	}
}

func TestEntriesZeroGap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gap = 0

	entries, err := Entries("One. Two. Three.", cfg)
	if err != nil {
		t.Fatalf("Entries returned error: %v", err)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].StartTime != entries[i-1].EndTime {
			t.Errorf("with zero gap entry %d should start exactly at previous end", i)
		}
	}
}
