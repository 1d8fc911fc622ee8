package caption

import (
	"strings"
	"testing"
	"time"
)

func TestBuildTimelineSequenceNumbersAreContiguous(t *testing.T) {
	fragments := []string{"one.", "two.", "three.", "four.", "five."}

	entries := buildTimeline(fragments, DefaultConfig())
	if len(entries) != len(fragments) {
		t.Fatalf("got %d entries, want %d", len(entries), len(fragments))
	}
	for i, entry := range entries {
		if entry.Index != i+1 {
			t.Errorf("entry %d has index %d, want %d", i, entry.Index, i+1)
		}
	}
}

func TestBuildTimelineEntriesNeverOverlap(t *testing.T) {
	fragments := []string{
		"A short one.",
		strings.Repeat("word ", 30),
		"Another.",
		strings.Repeat("x", 200),
		"Done.",
	}
	cfg := DefaultConfig()

	entries := buildTimeline(fragments, cfg)
	for i, entry := range entries {
		if entry.EndTime <= entry.StartTime {
			t.Errorf("entry %d: end %v not after start %v", i, entry.EndTime, entry.StartTime)
		}
		if i > 0 {
			prev := entries[i-1]
			if entry.StartTime < prev.EndTime {
				t.Errorf("entry %d starts at %v before previous end %v", i, entry.StartTime, prev.EndTime)
			}
			if got := entry.StartTime - prev.EndTime; got != cfg.Gap {
				t.Errorf("entry %d: gap = %v, want %v", i, got, cfg.Gap)
			}
		}
	}
}

func TestBuildTimelineZeroGapMakesEntriesAdjacent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gap = 0

	entries := buildTimeline([]string{"First.", "Second.", "Third."}, cfg)
	for i := 1; i < len(entries); i++ {
		if entries[i].StartTime != entries[i-1].EndTime {
			t.Errorf("entry %d starts at %v, previous ends at %v", i, entries[i].StartTime, entries[i-1].EndTime)
		}
	}
}

func TestFragmentDurationClampsToBounds(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		fragment string
		want     time.Duration
	}{
		{
			name:     "short fragment clamps to min",
			fragment: "Hi.",
			want:     cfg.MinDuration,
		},
		{
			name:     "empty fragment clamps to min",
			fragment: "",
			want:     cfg.MinDuration,
		},
		{
			name:     "long fragment clamps to max",
			fragment: strings.Repeat("a", 500),
			want:     cfg.MaxDuration,
		},
		{
			name:     "mid-range fragment scales by rate",
			fragment: strings.Repeat("a", 25), // 25 runes / 5 cps
			want:     5 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fragmentDuration(tt.fragment, cfg)
			if got != tt.want {
				t.Errorf("fragmentDuration(%q) = %v, want %v", tt.fragment, got, tt.want)
			}
		})
	}
}

func TestFragmentDurationCountsRunesNotBytes(t *testing.T) {
	cfg := Config{
		CharsPerSecond: 1,
		MinDuration:    time.Second,
		MaxDuration:    time.Minute,
		MaxFragmentLen: 100,
	}

	// 10 runes, 30 bytes
	got := fragmentDuration(strings.Repeat("가", 10), cfg)
	if got != 10*time.Second {
		t.Errorf("fragmentDuration = %v, want 10s", got)
	}
}

func TestBuildTimelineDurationsWithinBounds(t *testing.T) {
	cfg := DefaultConfig()
	fragments := Segment(strings.Repeat("Sentence here. ", 40), cfg.MaxFragmentLen)

	entries := buildTimeline(fragments, cfg)
	for i, entry := range entries {
		d := entry.EndTime - entry.StartTime
		if d < cfg.MinDuration || d > cfg.MaxDuration {
			t.Errorf("entry %d duration %v outside [%v, %v]", i, d, cfg.MinDuration, cfg.MaxDuration)
		}
	}
}

func TestBuildTimelineEmptyInput(t *testing.T) {
	entries := buildTimeline(nil, DefaultConfig())
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
