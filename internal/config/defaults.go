package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:     16,
			Height:    16,
			CellWidth: 2,
		},
		Snake: StartConfig{
			StartCol:  7,
			StartRow:  7,
			Direction: "right",
		},
		Fruit: FruitConfig{
			MaxSpawnAttempts: 256,
		},
		Timing: TimingConfig{
			TickMS: 100,
		},
		Glyphs: GlyphConfig{
			Snake:      "o",
			SnakeColor: "green",
			Fruit:      "x",
			FruitColor: "red",
		},
		Messages: MessageConfig{
			GameOver:    "YOU DIED",
			BoardFull:   "BOARD FULL",
			RestartHint: "Press (r) to restart",
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
