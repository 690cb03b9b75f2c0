package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/bwmon/internal/graph"
	"github.com/rileyhilliard/bwmon/internal/units"
)

// Config is the effective bwmon configuration: defaults, then the config
// file, then BWMON_* environment variables, then command line flags.
type Config struct {
	// Interface to monitor; empty means auto-detect.
	Interface string `yaml:"interface" mapstructure:"interface"`

	// Delay between samples, as seconds ("0.5") or a duration ("500ms").
	Delay string `yaml:"delay" mapstructure:"delay"`

	// Units is "binary" (KiB, 1024) or "decimal" (kB, 1000).
	Units string `yaml:"units" mapstructure:"units"`

	// Scale is the graph scale mode: zero-max, min-max or sync.
	Scale string `yaml:"scale" mapstructure:"scale"`

	// Peak starts with the max labels tracking the all-time peak.
	Peak bool `yaml:"peak" mapstructure:"peak"`

	// Lines fixes the graph height; 0 fits the terminal.
	Lines int `yaml:"lines" mapstructure:"lines"`

	// Colors enables colored output.
	Colors bool `yaml:"colors" mapstructure:"colors"`

	// Host reads counters from a remote Linux machine over SSH.
	Host string `yaml:"host" mapstructure:"host"`

	// MetricsAddr serves Prometheus metrics when set, e.g. ":9101".
	MetricsAddr string `yaml:"metrics_addr" mapstructure:"metrics_addr"`

	// LogFile receives log output while the dashboard owns the terminal.
	LogFile string `yaml:"log_file" mapstructure:"log_file"`
}

// Defaults
const (
	DefaultDelay = "1"
	DefaultUnits = "binary"
	DefaultScale = "zero-max"
)

// MinDelay is the shortest accepted sampling interval.
const MinDelay = 100 * time.Millisecond

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Delay:  DefaultDelay,
		Units:  DefaultUnits,
		Scale:  DefaultScale,
		Colors: true,
	}
}

// maxDelaySeconds is the longest delay a time.Duration can hold.
const maxDelaySeconds = float64(math.MaxInt64 / int64(time.Second))

// ParseDelay accepts plain seconds ("0.5") or a Go duration ("500ms").
func ParseDelay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(secs) || math.IsInf(secs, 0) {
			return 0, fmt.Errorf("delay %q is not a finite number", s)
		}
		if math.Abs(secs) > maxDelaySeconds {
			return 0, fmt.Errorf("delay %q is out of range (max %.0f seconds)", s, maxDelaySeconds)
		}
		return time.Duration(secs * float64(time.Second)), nil
	}
	return time.ParseDuration(s)
}

// DelayDuration returns the parsed Delay. Call Validate first.
func (c *Config) DelayDuration() time.Duration {
	d, _ := ParseDelay(c.Delay)
	return d
}

// UnitSystem returns the parsed Units. Call Validate first.
func (c *Config) UnitSystem() units.System {
	sys, _ := units.ParseSystem(c.Units)
	return sys
}

// ScaleMode returns the parsed Scale. Call Validate first.
func (c *Config) ScaleMode() graph.ScaleMode {
	mode, _ := graph.ParseScaleMode(c.Scale)
	return mode
}
