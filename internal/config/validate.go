package config

import (
	"fmt"

	"github.com/rileyhilliard/bwmon/internal/errors"
	"github.com/rileyhilliard/bwmon/internal/graph"
	"github.com/rileyhilliard/bwmon/internal/units"
)

// MinLines is the smallest fixed graph height.
const MinLines = 3

// Validate checks cfg and returns a structured error for the first problem.
func Validate(cfg *Config) error {
	delay, err := ParseDelay(cfg.Delay)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Can't parse delay %q", cfg.Delay),
			"Use seconds like 0.5 or a duration like 500ms.")
	}
	if delay < MinDelay {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Delay %s is below the minimum of %s", delay, MinDelay),
			"Pass a larger value to -d/--delay.")
	}

	if _, err := units.ParseSystem(cfg.Units); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Unknown units setting",
			"Set units to binary or decimal.")
	}

	if _, err := graph.ParseScaleMode(cfg.Scale); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Unknown scale mode",
			"Set scale to zero-max, min-max or sync.")
	}

	if cfg.Lines < 0 || (cfg.Lines > 0 && cfg.Lines < MinLines) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Graph height %d is too small", cfg.Lines),
			fmt.Sprintf("Use at least %d lines, or 0 to fit the terminal.", MinLines))
	}

	return nil
}
