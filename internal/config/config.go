// Package config provides YAML-based game configuration loading and
// validation for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board    BoardConfig   `yaml:"board"`
	Snake    StartConfig   `yaml:"snake"`
	Fruit    FruitConfig   `yaml:"fruit"`
	Timing   TimingConfig  `yaml:"timing"`
	Glyphs   GlyphConfig   `yaml:"glyphs"`
	Messages MessageConfig `yaml:"messages"`
	Audio    AudioConfig   `yaml:"audio"`
}

// BoardConfig defines the playfield.
type BoardConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	CellWidth int `yaml:"cell_width"` // Terminal columns per board cell
}

// StartConfig defines where a fresh snake appears.
type StartConfig struct {
	StartCol  int    `yaml:"start_col"`
	StartRow  int    `yaml:"start_row"`
	Direction string `yaml:"direction"` // up, down, left, right
}

// FruitConfig defines fruit placement limits.
type FruitConfig struct {
	MaxSpawnAttempts int `yaml:"max_spawn_attempts"`
}

// TimingConfig defines the fixed tick interval.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// GlyphConfig defines how snake and fruit are drawn.
type GlyphConfig struct {
	Snake      string `yaml:"snake"`
	SnakeColor string `yaml:"snake_color"`
	Fruit      string `yaml:"fruit"`
	FruitColor string `yaml:"fruit_color"`
}

// MessageConfig holds the end-of-round texts.
type MessageConfig struct {
	GameOver    string `yaml:"game_over"`
	BoardFull   string `yaml:"board_full"`
	RestartHint string `yaml:"restart_hint"`
}

// AudioConfig toggles sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// TickInterval returns the tick interval as a duration.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// SnakeRune returns the snake glyph rune.
func (c SnakeConfig) SnakeRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyphs.Snake)
	return r
}

// FruitRune returns the fruit glyph rune.
func (c SnakeConfig) FruitRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyphs.Fruit)
	return r
}

// ScreenSize returns the terminal cells needed to show the board with its
// frame and the HUD line beneath it.
func (c SnakeConfig) ScreenSize() (width, height int) {
	width = (c.Board.Width+1)*c.Board.CellWidth + 1
	height = c.Board.Height + 2 + HUDRows
	return width, height
}

// HUDRows is the number of rows reserved below the board frame.
const HUDRows = 2

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Width < 3 || c.Board.Height < 3 {
		errs = append(errs, fmt.Errorf("board must be at least 3x3, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Board.CellWidth < 1 || c.Board.CellWidth > 2 {
		errs = append(errs, fmt.Errorf("cell_width must be 1 or 2, got %d", c.Board.CellWidth))
	}
	if c.Snake.StartCol < 1 || c.Snake.StartCol > c.Board.Width ||
		c.Snake.StartRow < 1 || c.Snake.StartRow > c.Board.Height {
		errs = append(errs, fmt.Errorf("start (%d,%d) is outside the %dx%d board",
			c.Snake.StartCol, c.Snake.StartRow, c.Board.Width, c.Board.Height))
	}
	switch c.Snake.Direction {
	case "up", "down", "left", "right":
	default:
		errs = append(errs, fmt.Errorf("unknown direction %q", c.Snake.Direction))
	}
	if c.Fruit.MaxSpawnAttempts < 1 {
		errs = append(errs, fmt.Errorf("max_spawn_attempts must be positive, got %d", c.Fruit.MaxSpawnAttempts))
	}
	if c.Timing.TickMS < 1 {
		errs = append(errs, fmt.Errorf("tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if utf8.RuneCountInString(c.Glyphs.Snake) != 1 {
		errs = append(errs, fmt.Errorf("snake glyph must be a single character, got %q", c.Glyphs.Snake))
	}
	if utf8.RuneCountInString(c.Glyphs.Fruit) != 1 {
		errs = append(errs, fmt.Errorf("fruit glyph must be a single character, got %q", c.Glyphs.Fruit))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume must be within [0, 1], got %g", c.Audio.Volume))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
