// Package config loads the player's TOML configuration.
//
// The file is looked up at, in order:
//   - $XWORD_CONFIG
//   - $XDG_CONFIG_HOME/xword/config.toml
//   - ~/.config/xword/config.toml
//
// A missing file is not an error; the built-in defaults are used instead.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

const (
	envPath = "XWORD_CONFIG"

	minClueWidth = 16
	maxColor     = 1000
)

var ErrInvalid = errors.New("invalid config")

// RGB is a curses colour: three components in 0..1000.
type RGB [3]int16

type Colors struct {
	Foreground RGB `toml:"foreground"`
	Debug      RGB `toml:"debug"`
	Background RGB `toml:"background"`
}

type Config struct {
	// Verbose shows a debug line under the grid.
	Verbose bool `toml:"verbose"`
	// EscapeChord is two keys that, typed in quick succession in INSERT mode, act like escape.
	// Empty disables the chord.
	EscapeChord string `toml:"escape_chord"`
	// ClueWidth is the width of each clue panel, in columns.
	ClueWidth int `toml:"clue_width"`
	// LogFile receives debug logs. Empty discards them.
	LogFile string `toml:"log_file"`

	Colors Colors `toml:"colors"`
}

func Default() *Config {
	return &Config{
		EscapeChord: "jk",
		ClueWidth:   32,
		Colors: Colors{
			Foreground: RGB{900, 900, 900},
			Debug:      RGB{887, 113, 63},
			Background: RGB{170, 170, 170},
		},
	}
}

// Path returns where the config file is expected to live.
func Path() (string, error) {
	if p := os.Getenv(envPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "xword", "config.toml"), nil
}

// Load reads the config file from its usual location.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path over the defaults. Keys missing from the file keep their
// default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if n := utf8.RuneCountInString(c.EscapeChord); n != 0 && n != 2 {
		return fmt.Errorf("%w: escape_chord must be empty or two keys, got %q", ErrInvalid, c.EscapeChord)
	}
	if c.ClueWidth < minClueWidth {
		return fmt.Errorf("%w: clue_width must be at least %d, got %d", ErrInvalid, minClueWidth, c.ClueWidth)
	}
	for name, rgb := range map[string]RGB{
		"foreground": c.Colors.Foreground,
		"debug":      c.Colors.Debug,
		"background": c.Colors.Background,
	} {
		for _, v := range rgb {
			if v < 0 || v > maxColor {
				return fmt.Errorf("%w: colors.%s components must be within 0..%d", ErrInvalid, name, maxColor)
			}
		}
	}
	return nil
}

// Chord splits EscapeChord into its two keys. ok is false when the chord is disabled.
func (c *Config) Chord() (first, second string, ok bool) {
	if c.EscapeChord == "" {
		return "", "", false
	}
	r, size := utf8.DecodeRuneInString(c.EscapeChord)
	return string(r), c.EscapeChord[size:], true
}
