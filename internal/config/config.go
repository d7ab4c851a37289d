// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"hello-sum/pkg/hello"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidGreeting is returned by Validate for an unprintable greeting
var ErrInvalidGreeting = errors.New("invalid greeting")

// Config holds the values the program prints
type Config struct {
	Greeting string    `yaml:"greeting"`
	Number   int32     `yaml:"number"`
	Sum      SumConfig `yaml:"sum"`
}

// SumConfig holds the operands of the sum line
type SumConfig struct {
	A int32 `yaml:"a"`
	B int32 `yaml:"b"`
}

// Default returns the configuration compiled into the binary
func Default() (*Config, error) {
	return Parse(defaultsYAML)
}

// Parse decodes a YAML document and fills in unset fields
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Greeting == "" {
		cfg.Greeting = hello.HelloWorld()
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Greeting == "" {
		return fmt.Errorf("%w: greeting is required", ErrInvalidGreeting)
	}

	// Each value is printed on exactly one line
	if strings.ContainsAny(c.Greeting, "\r\n") {
		return fmt.Errorf("%w: greeting must be a single line", ErrInvalidGreeting)
	}

	return nil
}
