package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// fakeBinder wraps a pflag.FlagSet to satisfy the flagBinder interface.
type fakeBinder struct {
	fs *pflag.FlagSet
}

func (f *fakeBinder) Flags() *pflag.FlagSet { return f.fs }

// newFlagBinder creates a FlagSet with all config flags registered at their defaults.
func newFlagBinder(defaults Config) *fakeBinder {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	return &fakeBinder{fs: fs}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output != "public/sample-track.mp3" {
		t.Errorf("Output = %q; want %q", cfg.Output, "public/sample-track.mp3")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "info")
	}
	if cfg.Tone.DurationSec != 60 {
		t.Errorf("Tone.DurationSec = %g; want 60", cfg.Tone.DurationSec)
	}
	if cfg.Tone.BaseFreqHz != 440 {
		t.Errorf("Tone.BaseFreqHz = %g; want 440", cfg.Tone.BaseFreqHz)
	}
	if cfg.Tone.AltFreqHz != 523 {
		t.Errorf("Tone.AltFreqHz = %g; want 523", cfg.Tone.AltFreqHz)
	}
	if cfg.Tone.SampleRateHz != 44100 {
		t.Errorf("Tone.SampleRateHz = %d; want 44100", cfg.Tone.SampleRateHz)
	}
	if cfg.Tone.Amplitude != 0.3 {
		t.Errorf("Tone.Amplitude = %g; want 0.3", cfg.Tone.Amplitude)
	}
}

func TestLoadDefaults(t *testing.T) {
	defaults := DefaultConfig()

	cfg, err := Load(LoadOptions{Defaults: defaults})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg != defaults {
		t.Errorf("Load without overrides = %+v; want defaults %+v", cfg, defaults)
	}
}

func TestLoadFlagOverrides(t *testing.T) {
	defaults := DefaultConfig()
	binder := newFlagBinder(defaults)

	if err := binder.fs.Set("tone-sample-rate-hz", "8000"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := binder.fs.Set("tone-duration-sec", "1.5"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := binder.fs.Set("output", "fixtures/a440.wav"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	cfg, err := Load(LoadOptions{Cmd: binder, Defaults: defaults})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Tone.SampleRateHz != 8000 {
		t.Errorf("Tone.SampleRateHz = %d; want 8000", cfg.Tone.SampleRateHz)
	}
	if cfg.Tone.DurationSec != 1.5 {
		t.Errorf("Tone.DurationSec = %g; want 1.5", cfg.Tone.DurationSec)
	}
	if cfg.Output != "fixtures/a440.wav" {
		t.Errorf("Output = %q; want %q", cfg.Output, "fixtures/a440.wav")
	}
	// Untouched keys keep their defaults.
	if cfg.Tone.BaseFreqHz != defaults.Tone.BaseFreqHz {
		t.Errorf("Tone.BaseFreqHz = %g; want %g", cfg.Tone.BaseFreqHz, defaults.Tone.BaseFreqHz)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TONEGEN_TONE_BASE_FREQ_HZ", "220")
	t.Setenv("TONEGEN_LOG_LEVEL", "debug")

	cfg, err := Load(LoadOptions{Defaults: DefaultConfig()})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Tone.BaseFreqHz != 220 {
		t.Errorf("Tone.BaseFreqHz = %g; want 220", cfg.Tone.BaseFreqHz)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tonegen.yaml")
	content := []byte("output: fixtures/from-file.wav\ntone:\n  sample_rate_hz: 22050\n  amplitude: 0.5\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(LoadOptions{ConfigFile: path, Defaults: DefaultConfig()})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Output != "fixtures/from-file.wav" {
		t.Errorf("Output = %q; want %q", cfg.Output, "fixtures/from-file.wav")
	}
	if cfg.Tone.SampleRateHz != 22050 {
		t.Errorf("Tone.SampleRateHz = %d; want 22050", cfg.Tone.SampleRateHz)
	}
	if cfg.Tone.Amplitude != 0.5 {
		t.Errorf("Tone.Amplitude = %g; want 0.5", cfg.Tone.Amplitude)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(LoadOptions{ConfigFile: "does-not-exist.yaml", Defaults: DefaultConfig()})
	if err == nil {
		t.Fatal("expected error for explicit missing config file")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty output", mutate: func(c *Config) { c.Output = "  " }},
		{name: "zero duration", mutate: func(c *Config) { c.Tone.DurationSec = 0 }},
		{name: "negative duration", mutate: func(c *Config) { c.Tone.DurationSec = -1 }},
		{name: "zero sample rate", mutate: func(c *Config) { c.Tone.SampleRateHz = 0 }},
		{name: "negative base frequency", mutate: func(c *Config) { c.Tone.BaseFreqHz = -440 }},
		{name: "zero alternate frequency", mutate: func(c *Config) { c.Tone.AltFreqHz = 0 }},
		{name: "amplitude above one", mutate: func(c *Config) { c.Tone.Amplitude = 1.01 }},
		{name: "zero amplitude", mutate: func(c *Config) { c.Tone.Amplitude = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	for _, s := range []string{"", "info", "debug", "warn", "warning", "error", "DEBUG"} {
		if _, err := ParseLogLevel(s); err != nil {
			t.Errorf("ParseLogLevel(%q) returned error: %v", s, err)
		}
	}
	if _, err := ParseLogLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}
