package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig holds CLI defaults loaded from a YAML file. Every field is
// optional; explicit command-line flags always win over the file.
type fileConfig struct {
	Method   string `yaml:"method"`
	Moves    *bool  `yaml:"moves"`
	MaxNodes int    `yaml:"max_nodes"`
	Graph    string `yaml:"graph"`
	DB       string `yaml:"db"`
}

// loadConfig reads and strictly decodes the YAML config at path. An empty
// path yields the zero config; unknown keys are an error so typos do not
// pass silently.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.MaxNodes < 0 {
		return fileConfig{}, fmt.Errorf("config %s: max_nodes must not be negative", path)
	}
	return cfg, nil
}
