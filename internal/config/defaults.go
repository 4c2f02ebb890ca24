package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FPS: 60,
		Theme: Theme{
			Head:   "bright_green",
			Snake:  "green",
			Item:   "red",
			Border: "gray",
			Text:   "white",
		},
		Log: LogConfig{
			Path:  "~/.snake/snake.log",
			Level: LevelInfo,
		},
	}
}
