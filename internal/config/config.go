package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Output   string     `mapstructure:"output"`
	LogLevel string     `mapstructure:"log_level"`
	Tone     ToneConfig `mapstructure:"tone"`
}

type ToneConfig struct {
	DurationSec  float64 `mapstructure:"duration_sec"`
	BaseFreqHz   float64 `mapstructure:"base_freq_hz"`
	AltFreqHz    float64 `mapstructure:"alt_freq_hz"`
	SampleRateHz int     `mapstructure:"sample_rate_hz"`
	Amplitude    float64 `mapstructure:"amplitude"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// DefaultConfig returns the fixed fixture parameters: a 60-second tone at
// 44100 Hz alternating between A4 (440 Hz) and roughly C5 (523 Hz) at 30%
// of full scale. The default output path keeps the .mp3 extension the
// player under test expects; the payload is uncompressed PCM regardless.
func DefaultConfig() Config {
	return Config{
		Output:   "public/sample-track.mp3",
		LogLevel: "info",
		Tone: ToneConfig{
			DurationSec:  60,
			BaseFreqHz:   440,
			AltFreqHz:    523,
			SampleRateHz: 44100,
			Amplitude:    0.3,
		},
	}
}

// Validate rejects parameter combinations that cannot produce a usable
// fixture. Non-positive duration or sample rate is an error, never an
// empty output file.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output path is empty")
	}
	if c.Tone.DurationSec <= 0 {
		return fmt.Errorf("tone.duration_sec must be positive, got %g", c.Tone.DurationSec)
	}
	if c.Tone.SampleRateHz < 1 {
		return fmt.Errorf("tone.sample_rate_hz must be positive, got %d", c.Tone.SampleRateHz)
	}
	if c.Tone.BaseFreqHz <= 0 {
		return fmt.Errorf("tone.base_freq_hz must be positive, got %g", c.Tone.BaseFreqHz)
	}
	if c.Tone.AltFreqHz <= 0 {
		return fmt.Errorf("tone.alt_freq_hz must be positive, got %g", c.Tone.AltFreqHz)
	}
	if c.Tone.Amplitude <= 0 || c.Tone.Amplitude > 1 {
		return fmt.Errorf("tone.amplitude must be in (0, 1], got %g", c.Tone.Amplitude)
	}
	return nil
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("output", defaults.Output, "Output fixture path")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.Float64("tone-duration-sec", defaults.Tone.DurationSec, "Fixture duration in seconds")
	fs.Float64("tone-base-freq-hz", defaults.Tone.BaseFreqHz, "Base tone frequency in Hz")
	fs.Float64("tone-alt-freq-hz", defaults.Tone.AltFreqHz, "Alternate tone frequency in Hz")
	fs.Int("tone-sample-rate-hz", defaults.Tone.SampleRateHz, "Sample rate in Hz")
	fs.Float64("tone-amplitude", defaults.Tone.Amplitude, "Linear amplitude scale in (0, 1]")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("TONEGEN")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("tonegen")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("output", c.Output)
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("tone.duration_sec", c.Tone.DurationSec)
	v.SetDefault("tone.base_freq_hz", c.Tone.BaseFreqHz)
	v.SetDefault("tone.alt_freq_hz", c.Tone.AltFreqHz)
	v.SetDefault("tone.sample_rate_hz", c.Tone.SampleRateHz)
	v.SetDefault("tone.amplitude", c.Tone.Amplitude)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("tone.duration_sec", "tone-duration-sec")
	v.RegisterAlias("tone.base_freq_hz", "tone-base-freq-hz")
	v.RegisterAlias("tone.alt_freq_hz", "tone-alt-freq-hz")
	v.RegisterAlias("tone.sample_rate_hz", "tone-sample-rate-hz")
	v.RegisterAlias("tone.amplitude", "tone-amplitude")
}
