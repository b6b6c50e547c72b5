package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/nguyentantai21042004/lyric-deck/internal/lyrics"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Deck        DeckConfig        `yaml:"deck"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Office      OfficeConfig      `yaml:"office"`
}

type DeckConfig struct {
	GroupSize       int    `yaml:"group_size"`
	FontSize        int    `yaml:"font_size"`
	FontName        string `yaml:"font_name"`
	TextColor       string `yaml:"text_color"`
	BackgroundColor string `yaml:"background_color"`
	LyricSheet      bool   `yaml:"lyric_sheet"`
	PDF             bool   `yaml:"pdf"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type OfficeConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Load reads a YAML config file and validates it
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a config usable without a config file
func Default() *Config {
	cfg := &Config{
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
	// Defaults always validate
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Deck.GroupSize == 0 {
		c.Deck.GroupSize = 2
	}
	if c.Deck.FontSize == 0 {
		c.Deck.FontSize = 50
	}
	if c.Deck.FontName == "" {
		c.Deck.FontName = "Helvetica"
	}
	if c.Deck.TextColor == "" {
		c.Deck.TextColor = "FFFFFF"
	}
	if c.Deck.BackgroundColor == "" {
		c.Deck.BackgroundColor = "000000"
	}
	if c.Office.BinaryPath == "" {
		c.Office.BinaryPath = "soffice"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	if err := lyrics.ValidateGroupSize(c.Deck.GroupSize); err != nil {
		return fmt.Errorf("deck.group_size: %w", err)
	}
	if c.Deck.FontSize < 0 {
		return fmt.Errorf("deck.font_size must be positive, got %d", c.Deck.FontSize)
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must be positive, got %d", c.Performance.MaxConcurrent)
	}
	if !hexColor.MatchString(c.Deck.TextColor) {
		return fmt.Errorf("deck.text_color must be a 6-digit hex colour, got %q", c.Deck.TextColor)
	}
	if !hexColor.MatchString(c.Deck.BackgroundColor) {
		return fmt.Errorf("deck.background_color must be a 6-digit hex colour, got %q", c.Deck.BackgroundColor)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	return nil
}
