package cli

import (
	"github.com/rileyhilliard/bwmon/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addDashboardFlags registers the flags that shape the dashboard.
// Defaults mirror config.DefaultConfig so --help shows real values.
func addDashboardFlags(fs *pflag.FlagSet) {
	fs.StringP("interface", "i", "", "network interface to monitor (default: first interface that is up)")
	fs.StringP("delay", "d", config.DefaultDelay, "seconds between samples (0.5) or a duration (500ms), minimum 0.1s")
	fs.BoolP("si", "s", false, "use decimal (SI) units instead of binary")
	fs.BoolP("no-colors", "n", false, "disable colors")
	fs.IntP("lines", "l", 0, "fixed graph height in lines (0 fits the terminal)")
	fs.String("scale", config.DefaultScale, "graph scale: zero-max, min-max or sync")
	fs.Bool("peak", false, "show the all-time peak instead of the window max")
	fs.Bool("pick", false, "choose the interface from a list")
	fs.String("metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9101)")
	fs.String("log-file", "", "write logs to this file while the dashboard runs")
}

// loadConfig merges defaults, the config file, BWMON_* variables and the
// flags set on cmd, then validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	fs := cmd.Flags()

	v := config.New()
	if err := config.BindFlags(v, fs); err != nil {
		return nil, err
	}

	explicit, _ := fs.GetString("config")
	path, err := config.Find(explicit)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(v, path)
	if err != nil {
		return nil, err
	}

	// -s and -n only ever switch away from the configured value.
	if f := fs.Lookup("si"); f != nil && f.Changed {
		if si, _ := fs.GetBool("si"); si {
			cfg.Units = "decimal"
		}
	}
	if f := fs.Lookup("no-colors"); f != nil && f.Changed {
		if noColors, _ := fs.GetBool("no-colors"); noColors {
			cfg.Colors = false
		}
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
