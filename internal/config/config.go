// Package config provides YAML-based configuration loading for the snake game.
package config

// Config contains all user-tunable settings.
type Config struct {
	FPS   int       `yaml:"fps"`
	Theme Theme     `yaml:"theme"`
	Log   LogConfig `yaml:"log"`
}

// Theme assigns palette colors to board elements.
type Theme struct {
	Head   string `yaml:"head"`
	Snake  string `yaml:"snake"`
	Item   string `yaml:"item"`
	Border string `yaml:"border"`
	Text   string `yaml:"text"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	Path  string `yaml:"path"`  // "~" expands to the home directory; empty disables logging
	Level string `yaml:"level"` // debug, info, warn, error
}

// Log levels accepted in LogConfig.Level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Normalize replaces invalid values with defaults.
func (c *Config) Normalize() {
	def := Default()

	if c.FPS <= 0 {
		c.FPS = def.FPS
	}

	if c.Theme.Head == "" {
		c.Theme.Head = def.Theme.Head
	}
	if c.Theme.Snake == "" {
		c.Theme.Snake = def.Theme.Snake
	}
	if c.Theme.Item == "" {
		c.Theme.Item = def.Theme.Item
	}
	if c.Theme.Border == "" {
		c.Theme.Border = def.Theme.Border
	}
	if c.Theme.Text == "" {
		c.Theme.Text = def.Theme.Text
	}

	switch c.Log.Level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		c.Log.Level = def.Log.Level
	}
}
