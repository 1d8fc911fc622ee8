package caption

import (
	"time"
	"unicode/utf8"
)

// estimates playback duration from fragment length, clamped to the
// configured bounds
func fragmentDuration(fragment string, cfg Config) time.Duration {
	runes := utf8.RuneCountInString(fragment)
	d := time.Duration(float64(runes) / cfg.CharsPerSecond * float64(time.Second))

	if d < cfg.MinDuration {
		return cfg.MinDuration
	}
	if d > cfg.MaxDuration {
		return cfg.MaxDuration
	}
	return d
}

// assigns non-overlapping, monotonically increasing times to fragments.
// Each entry ends where the running clock stands; the clock then advances
// by the entry duration plus the configured gap, so entries can never
// overlap.
func buildTimeline(fragments []string, cfg Config) []Entry {
	entries := make([]Entry, 0, len(fragments))

	var clock time.Duration
	for i, fragment := range fragments {
		d := fragmentDuration(fragment, cfg)
		entries = append(entries, Entry{
			Index:     i + 1,
			StartTime: clock,
			EndTime:   clock + d,
			Text:      fragment,
		})
		clock += d + cfg.Gap
	}
	return entries
}
