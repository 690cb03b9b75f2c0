package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/bwmon/internal/config"
	"github.com/rileyhilliard/bwmon/internal/errors"
	"github.com/rileyhilliard/bwmon/internal/ui"
	"github.com/spf13/cobra"
)

var configInitForce bool

// configCmd groups the config file subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the bwmon config file",
	Long: `Create, inspect and edit the bwmon config file.

The file lives at ~/.config/bwmon/config.yaml unless --config says otherwise.
Settings are applied in order: built-in defaults, the config file, BWMON_*
environment variables (e.g. BWMON_DELAY=0.5), then command line flags.`,
}

// configInitCmd writes a commented starter file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write a config file with every setting at its default and a comment
explaining each one.

Examples:
  bwmon config init
  bwmon config init --force
  bwmon --config ./bwmon.yaml config init`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath(cmd)
		if err := config.WriteDefault(path, configInitForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", ui.SymbolSuccess, path)
		return nil
	},
}

// configShowCmd prints the effective settings
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration bwmon would run with after merging the config
file, BWMON_* environment variables and defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// configSetCmd edits one key in place
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting in the config file",
	Long: `Change one setting in the config file, keeping its other settings and
comments. The file is created with defaults first if it doesn't exist.

Examples:
  bwmon config set interface wlan0
  bwmon config set delay 0.5
  bwmon config set scale sync`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath(cmd)
		if _, err := config.Find(path); err != nil {
			if err := config.WriteDefault(path, false); err != nil {
				return err
			}
		}
		previous, err := os.ReadFile(path)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot read config file "+path, "Check file permissions")
		}
		if err := config.Set(path, args[0], args[1]); err != nil {
			return err
		}

		// Roll back values the dashboard would refuse to start with.
		cfg, err := config.Load(config.New(), path)
		if err == nil {
			err = config.Validate(cfg)
		}
		if err != nil {
			_ = os.WriteFile(path, previous, 0o644)
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s Set %s = %s in %s\n", ui.SymbolSuccess, args[0], args[1], path)
		return nil
	},
}

// configPath is the --config value or the default location.
func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultPath()
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
