// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package prefs

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds engine settings and the default preference values.
// It is itself a Provider.
type Config struct {
	// RomajiKanaMode gates romaji-to-kana conversion (0 always, 1 never, 2 locale).
	// Default: 2
	RomajiKanaMode int `yaml:"romaji_kana_mode" env:"KENSAKU_ROMAJI_KANA_MODE" env-default:"2"`

	// WantRomajiToKana converts romaji atoms to hiragana.
	WantRomajiToKana bool `yaml:"want_romaji_to_kana" env:"KENSAKU_WANT_ROMAJI_TO_KANA" env-default:"true"`

	// WantHiraganaToKatakana adds the katakana spelling of hiragana atoms.
	WantHiraganaToKatakana bool `yaml:"want_hiragana_to_katakana" env:"KENSAKU_WANT_HIRAGANA_TO_KATAKANA" env-default:"true"`

	// WantKatakanaToHiragana adds the hiragana spelling of katakana atoms.
	WantKatakanaToHiragana bool `yaml:"want_katakana_to_hiragana" env:"KENSAKU_WANT_KATAKANA_TO_HIRAGANA" env-default:"true"`

	// MaxAtoms caps the atoms taken from one query.
	// Default: 20
	MaxAtoms int `yaml:"max_atoms" env:"KENSAKU_MAX_ATOMS" env-default:"20"`

	// MatchTimeout bounds a single matcher evaluation.
	// Default: 100ms
	MatchTimeout time.Duration `yaml:"match_timeout" env:"KENSAKU_MATCH_TIMEOUT" env-default:"100ms"`

	// PoolSize is the number of ranking workers.
	// Default: 8
	PoolSize int `yaml:"pool_size" env:"KENSAKU_POOL_SIZE" env-default:"8"`

	// StorePath is the preference store directory. Empty keeps preferences in memory.
	StorePath string `yaml:"store_path" env:"KENSAKU_STORE_PATH"`
}

var _ Provider = (*Config)(nil)

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithRomajiKanaMode sets the romaji-kana mode.
func WithRomajiKanaMode(mode RomajiKanaMode) ConfigOption {
	return func(c *Config) {
		c.RomajiKanaMode = int(mode)
	}
}

// WithTransliteration sets all three transliteration toggles.
func WithTransliteration(romajiToKana, hiraganaToKatakana, katakanaToHiragana bool) ConfigOption {
	return func(c *Config) {
		c.WantRomajiToKana = romajiToKana
		c.WantHiraganaToKatakana = hiraganaToKatakana
		c.WantKatakanaToHiragana = katakanaToHiragana
	}
}

// WithMaxAtoms sets the atom cap.
func WithMaxAtoms(n int) ConfigOption {
	return func(c *Config) {
		c.MaxAtoms = n
	}
}

// WithMatchTimeout sets the per-match timeout.
func WithMatchTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.MatchTimeout = d
	}
}

// WithPoolSize sets the number of ranking workers.
func WithPoolSize(n int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = n
	}
}

// WithStorePath sets the preference store directory.
func WithStorePath(path string) ConfigOption {
	return func(c *Config) {
		c.StorePath = path
	}
}

// DefaultConfig returns a Config with every transliteration enabled and the
// romaji-kana mode following the locale.
//
// Outside a Japanese locale this converts any term that reads as valid romaji
// to kana before matching, so an English word that happens to spell romaji
// ("name" becomes なめ) no longer matches its gloss. Set RomajiKanaMode to
// RomajiKanaNever, or WantRomajiToKana to false, to search such words as
// typed.
func DefaultConfig() *Config {
	return &Config{
		RomajiKanaMode:         int(RomajiKanaLocale),
		WantRomajiToKana:       true,
		WantHiraganaToKatakana: true,
		WantKatakanaToHiragana: true,
		MaxAtoms:               20,
		MatchTimeout:           100 * time.Millisecond,
		PoolSize:               8,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithRomajiKanaMode(RomajiKanaAlways),
//	    WithStorePath("/var/lib/kensaku"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize replaces unset numeric settings with their defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()
	if c.MaxAtoms == 0 {
		c.MaxAtoms = defaults.MaxAtoms
	}
	if c.MatchTimeout == 0 {
		c.MatchTimeout = defaults.MatchTimeout
	}
	if c.PoolSize == 0 {
		c.PoolSize = defaults.PoolSize
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if !RomajiKanaMode(c.RomajiKanaMode).Valid() {
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrInvalidRomajiKanaMode, c.RomajiKanaMode)
	}
	if c.MaxAtoms < 0 {
		return fmt.Errorf("%w: MaxAtoms must be positive", ErrInvalidConfig)
	}
	if c.MatchTimeout < 0 {
		return fmt.Errorf("%w: MatchTimeout must be positive", ErrInvalidConfig)
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("%w: PoolSize must be positive", ErrInvalidConfig)
	}
	return nil
}

// GetBool returns a boolean preference. Unknown keys read as false.
func (c *Config) GetBool(key string) bool {
	switch key {
	case KeyWantRomajiToKana:
		return c.WantRomajiToKana
	case KeyWantHiraganaToKatakana:
		return c.WantHiraganaToKatakana
	case KeyWantKatakanaToHiragana:
		return c.WantKatakanaToHiragana
	}
	return false
}

// GetInt returns an integer preference. Unknown keys read as 0.
func (c *Config) GetInt(key string) int {
	if key == KeyRomajiKanaMode {
		return c.RomajiKanaMode
	}
	return 0
}

// LoadConfig reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// An empty path loads from ENV + defaults only.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("prefs config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("prefs config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("prefs config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("prefs config: validate: %w", err)
	}

	return &cfg, nil
}
