// Package config loads the YAML configuration of the demo command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
)

type Config struct {
	Bus         string  `yaml:"bus"`      // i2creg name, "" for the first bus
	Addr        uint16  `yaml:"addr"`     // 7 bit address
	SpeedHz     int64   `yaml:"speed_hz"` // 0 keeps the bus default
	Brightness  float64 `yaml:"brightness"`
	ClearOnExit bool    `yaml:"clear_on_exit"`
	Demo        string  `yaml:"demo"` // rainbow | solid | chase | off
	FPS         int     `yaml:"fps"`
	Color       [3]int  `yaml:"color,flow"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Addr:        0x75,
		Brightness:  0.8,
		ClearOnExit: true,
		Demo:        "rainbow",
		FPS:         30,
		Color:       [3]int{255, 255, 255},
	}
}

// Load reads path on top of Default.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate checks the ranges the driver does not check itself.
func (c *Config) Validate() error {
	if c.Addr == 0 || c.Addr > 0x7F {
		return fmt.Errorf("config: addr 0x%X is not a 7 bit address", c.Addr)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if c.SpeedHz < 0 {
		return fmt.Errorf("config: negative speed_hz %d", c.SpeedHz)
	}
	switch c.Demo {
	case "rainbow", "solid", "chase", "off":
	default:
		return fmt.Errorf("config: unknown demo %q", c.Demo)
	}
	return nil
}

// Speed returns the bus speed as a physic.Frequency.
func (c *Config) Speed() physic.Frequency {
	return physic.Frequency(c.SpeedHz) * physic.Hertz
}
