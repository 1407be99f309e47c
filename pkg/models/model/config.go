package model

import (
	"fmt"
	"strings"
)

type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"on":   On,
	"1":    On,
	"true": On,
	"yes":  On,

	"off":   Off,
	"0":     Off,
	"false": Off,
	"no":    Off,
}

// NewConfig reads an On/Off switch. Unknown words are Off.
func NewConfig(s string) Config {
	return configName[strings.ToLower(strings.TrimSpace(s))]
}

func (c Config) String() string {
	if c {
		return "On"
	}
	return "Off"
}

// Set makes Config usable as a flag.Value.
func (c *Config) Set(s string) error {
	v, ok := configName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return fmt.Errorf("want on or off, got %q", s)
	}
	*c = v
	return nil
}

func (c *Config) IsBoolFlag() bool {
	return true
}
