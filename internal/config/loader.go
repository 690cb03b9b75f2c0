package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/bwmon/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// GlobalConfigDir is the directory for the config file, under $HOME.
	GlobalConfigDir = ".config/bwmon"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. BWMON_DELAY.
	EnvPrefix = "BWMON"
)

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"interface":    "interface",
	"delay":        "delay",
	"scale":        "scale",
	"peak":         "peak",
	"lines":        "lines",
	"host":         "host",
	"metrics-addr": "metrics_addr",
	"log-file":     "log_file",
}

// New returns a viper instance with defaults and environment overrides set up.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("interface", d.Interface)
	v.SetDefault("delay", d.Delay)
	v.SetDefault("units", d.Units)
	v.SetDefault("scale", d.Scale)
	v.SetDefault("peak", d.Peak)
	v.SetDefault("lines", d.Lines)
	v.SetDefault("colors", d.Colors)
	v.SetDefault("host", d.Host)
	v.SetDefault("metrics_addr", d.MetricsAddr)
	v.SetDefault("log_file", d.LogFile)
}

// BindFlags makes the flags in fs that are set on the command line override
// the file and environment. Flags missing from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to bind flag --"+flag, "")
		}
	}
	return nil
}

// DefaultPath returns ~/.config/bwmon/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// Find returns the config file to load: the explicit path, which must exist,
// or the global config if present. Returns "" when there is none.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct, or create one with 'bwmon config init'")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	global := DefaultPath()
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}
	return "", nil
}

// Load reads path (if not empty) into v and returns the merged config.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file "+path,
				"Check the file exists and is valid YAML")
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}
	return cfg, nil
}
