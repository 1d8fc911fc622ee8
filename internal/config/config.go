package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"cuegen/internal/caption"
	"cuegen/internal/pacing"
	"cuegen/internal/refine"
)

// Config is the on-disk tool configuration. Every field has a working
// default; a config file only overrides what it names.
type Config struct {
	Provider string       `yaml:"provider"`
	Model    string       `yaml:"model"`
	Timing   TimingConfig `yaml:"timing"`
	Pacing   PacingConfig `yaml:"pacing"`
	Refine   RefineConfig `yaml:"refine"`
}

// caption timing parameters, durations in seconds
type TimingConfig struct {
	CharsPerSecond float64 `yaml:"chars_per_second"`
	MinDuration    float64 `yaml:"min_duration"`
	MaxDuration    float64 `yaml:"max_duration"`
	Gap            float64 `yaml:"gap"`
	MaxFragmentLen int     `yaml:"max_fragment_len"`
}

// API call pacing, durations in seconds
type PacingConfig struct {
	MinInterval    float64 `yaml:"min_interval"`
	MaxAttempts    int     `yaml:"max_attempts"`
	InitialBackoff float64 `yaml:"initial_backoff"`
}

type RefineConfig struct {
	TargetScore float64 `yaml:"target_score"`
	MaxAttempts int     `yaml:"max_attempts"`
}

func Default() Config {
	timing := caption.DefaultConfig()
	policy := pacing.DefaultPolicy()
	loop := refine.DefaultOptions()

	return Config{
		Provider: "gemini",
		Timing: TimingConfig{
			CharsPerSecond: timing.CharsPerSecond,
			MinDuration:    timing.MinDuration.Seconds(),
			MaxDuration:    timing.MaxDuration.Seconds(),
			Gap:            timing.Gap.Seconds(),
			MaxFragmentLen: timing.MaxFragmentLen,
		},
		Pacing: PacingConfig{
			MinInterval:    3,
			MaxAttempts:    policy.MaxAttempts,
			InitialBackoff: policy.InitialBackoff.Seconds(),
		},
		Refine: RefineConfig{
			TargetScore: loop.TargetScore,
			MaxAttempts: loop.MaxAttempts,
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// CaptionConfig converts the timing section into caption parameters.
func (c Config) CaptionConfig() caption.Config {
	return caption.Config{
		CharsPerSecond: c.Timing.CharsPerSecond,
		MinDuration:    secondsToDuration(c.Timing.MinDuration),
		MaxDuration:    secondsToDuration(c.Timing.MaxDuration),
		Gap:            secondsToDuration(c.Timing.Gap),
		MaxFragmentLen: c.Timing.MaxFragmentLen,
	}
}

// RetryPolicy converts the pacing section into a retry policy.
func (c Config) RetryPolicy() pacing.Policy {
	return pacing.Policy{
		MaxAttempts:    c.Pacing.MaxAttempts,
		InitialBackoff: secondsToDuration(c.Pacing.InitialBackoff),
	}
}

// MinInterval returns the minimum spacing between dependent API calls.
func (c Config) MinInterval() time.Duration {
	return secondsToDuration(c.Pacing.MinInterval)
}

// RefineOptions converts the refine section into loop options.
func (c Config) RefineOptions() refine.Options {
	return refine.Options{
		TargetScore: c.Refine.TargetScore,
		MaxAttempts: c.Refine.MaxAttempts,
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
