package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/bwmon/internal/errors"
	"github.com/spf13/cobra"
)

// rootCmd runs the dashboard
var rootCmd = &cobra.Command{
	Use:   "bwmon",
	Short: "Live terminal bandwidth monitor",
	Long: `Sample one network interface's byte counters and draw incoming and
outgoing throughput as scrolling graphs, with current, max, average, min and
total figures for each direction.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  m           Cycle graph scale (zero-max, min-max, sync)
  p           Toggle all-time peak
  u           Toggle binary/decimal units
  r           Redraw
  ?           Show help

Examples:
  bwmon
  bwmon -i wlan0 -d 0.5
  bwmon --scale sync --peak
  bwmon --host gateway --metrics-addr :9101`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		pick, _ := cmd.Flags().GetBool("pick")
		return monitorCommand(cfg, pick)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.config/bwmon/config.yaml)")
	rootCmd.PersistentFlags().String("host", "", "read counters from a remote Linux host over SSH")
	addDashboardFlags(rootCmd.Flags())
}

// Execute runs the root command and exits with a non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(handleError(err))
	}
}

// handleError prints err and returns the exit code for it.
func handleError(err error) int {
	if code, ok := errors.GetExitCode(err); ok {
		return code
	}
	fmt.Fprintln(os.Stderr, err)
	return 1
}
