package graph

import (
	"fmt"
	"strings"
)

// ScaleMode selects how sample values map onto graph rows.
type ScaleMode int

const (
	// ZeroToMax scales each channel from 0 to its own maximum.
	ZeroToMax ScaleMode = iota
	// MinToMax scales each channel between its window minimum and maximum.
	MinToMax
	// SynchronizedZeroToMax scales both channels from 0 to the larger maximum.
	SynchronizedZeroToMax
)

var scaleNames = map[ScaleMode]string{
	ZeroToMax:             "zero-max",
	MinToMax:              "min-max",
	SynchronizedZeroToMax: "sync",
}

// String returns the flag/config name of the mode.
func (s ScaleMode) String() string {
	if name, ok := scaleNames[s]; ok {
		return name
	}
	return "zero-max"
}

// Next cycles to the following mode.
func (s ScaleMode) Next() ScaleMode {
	return ScaleMode((int(s) + 1) % len(scaleNames))
}

// Synchronized reports whether both channels share one maximum.
func (s ScaleMode) Synchronized() bool {
	return s == SynchronizedZeroToMax
}

// ParseScaleMode maps a flag/config value onto a ScaleMode.
func ParseScaleMode(name string) (ScaleMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "zero-max", "zero", "max":
		return ZeroToMax, nil
	case "min-max", "minmax", "range":
		return MinToMax, nil
	case "sync", "synchronized", "shared":
		return SynchronizedZeroToMax, nil
	default:
		return ZeroToMax, fmt.Errorf("unknown scale mode %q (want zero-max, min-max or sync)", name)
	}
}
