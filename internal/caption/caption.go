package caption

import (
	"errors"
	"fmt"
	"time"
)

// represents single timed caption entry
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// timing parameters for converting narration text into entries
type Config struct {
	CharsPerSecond float64       // assumed narration speed
	MinDuration    time.Duration // floor on a single entry
	MaxDuration    time.Duration // ceiling on a single entry
	Gap            time.Duration // silence inserted after each entry
	MaxFragmentLen int           // fragments longer than this (in runes) are re-split on commas
}

func DefaultConfig() Config {
	return Config{
		CharsPerSecond: 5,
		MinDuration:    2 * time.Second,
		MaxDuration:    8 * time.Second,
		Gap:            300 * time.Millisecond,
		MaxFragmentLen: 100,
	}
}

var ErrInvalidConfig = errors.New("invalid timing configuration")

func (c Config) Validate() error {
	if c.CharsPerSecond <= 0 {
		return fmt.Errorf(
			"%w: chars per second must be positive, got %v",
			ErrInvalidConfig,
			c.CharsPerSecond,
		)
	}
	if c.MinDuration <= 0 {
		return fmt.Errorf(
			"%w: min duration must be positive, got %v",
			ErrInvalidConfig,
			c.MinDuration,
		)
	}
	if c.MaxDuration < c.MinDuration {
		return fmt.Errorf(
			"%w: max duration %v is below min duration %v",
			ErrInvalidConfig,
			c.MaxDuration,
			c.MinDuration,
		)
	}
	if c.Gap < 0 {
		return fmt.Errorf(
			"%w: gap must not be negative, got %v",
			ErrInvalidConfig,
			c.Gap,
		)
	}
	if c.MaxFragmentLen <= 0 {
		return fmt.Errorf(
			"%w: max fragment length must be positive, got %d",
			ErrInvalidConfig,
			c.MaxFragmentLen,
		)
	}
	return nil
}

// Entries converts narration text into timed caption entries.
// Empty or whitespace-only input yields an empty slice.
func Entries(text string, cfg Config) ([]Entry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fragments := Segment(text, cfg.MaxFragmentLen)
	return buildTimeline(fragments, cfg), nil
}

// Generate converts narration text into serialized SRT.
func Generate(text string, cfg Config) (string, error) {
	entries, err := Entries(text, cfg)
	if err != nil {
		return "", err
	}
	return RenderSRT(entries), nil
}
