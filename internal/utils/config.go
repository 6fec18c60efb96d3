package utils

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the operation script the demo runs against each
// container.
type Config struct {
	Count        int    `yaml:"count"`
	EraseIndices []int  `yaml:"erase_indices"`
	FrontValue   int    `yaml:"front_value"`
	MiddleValue  int    `yaml:"middle_value"`
	BackValue    int    `yaml:"back_value"`
	MoveSample   []int  `yaml:"move_sample"`
	Debug        bool   `yaml:"debug"`
	LogFile      string `yaml:"log_file"`
}

// LoadConfig reads a YAML config. Keys missing from the file keep their
// defaults, and a missing file yields the defaults outright.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return config, nil
}

// DefaultConfig returns default config values
func DefaultConfig() *Config {
	return &Config{
		Count:        10,
		EraseIndices: []int{2, 3, 4},
		FrontValue:   10,
		MiddleValue:  20,
		BackValue:    30,
		MoveSample:   []int{1, 2, 3, 4},
	}
}

func (c *Config) validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	}
	if len(c.MoveSample) == 0 {
		return errors.New("move_sample must not be empty")
	}
	return nil
}
