// Package config loads the game's YAML configuration. Documents are checked
// against an embedded JSON schema before they are decoded.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var schemaJSON []byte

const schemaURL = "config.schema.json"

type Config struct {
	Board     Board  `yaml:"board"`
	FrameRate int    `yaml:"frame_rate"`
	CellSize  int    `yaml:"cell_size"`
	Seed      uint64 `yaml:"seed"`
	Audio     bool   `yaml:"audio"`
	Keys      Keys   `yaml:"keys"`
}

type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Keys holds one action -> key names table per front end.
type Keys struct {
	GUI map[string][]string `yaml:"gui"`
	TUI map[string][]string `yaml:"tui"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Board:     Board{Width: 10, Height: 20},
		FrameRate: 60,
		CellSize:  40,
		Audio:     true,
		Keys: Keys{
			GUI: map[string][]string{
				"left":   {"A", "ArrowLeft"},
				"right":  {"D", "ArrowRight"},
				"rotate": {"W", "ArrowUp"},
				"drop":   {"S", "ArrowDown"},
				"start":  {"Enter", "Space"},
				"back":   {"Escape"},
			},
			TUI: map[string][]string{
				"left":   {"a", "Left"},
				"right":  {"d", "Right"},
				"rotate": {"w", "Up"},
				"drop":   {"s", "Down"},
				"start":  {"Enter", " "},
				"back":   {"Esc"},
			},
		},
	}
}

var schema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
})

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates raw against the schema and decodes it over the defaults.
// Keys present in the document replace the default binding for that action
// only.
func Parse(raw []byte) (Config, error) {
	if err := validate(raw); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func validate(raw []byte) error {
	s, err := schema()
	if err != nil {
		return fmt.Errorf("config: schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	// The validator wants JSON values, so round-trip the YAML tree.
	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var value any
	if err := json.Unmarshal(encoded, &value); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := s.Validate(value); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
