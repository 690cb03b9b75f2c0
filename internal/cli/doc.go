// Package cli implements the bwmon command-line interface.
//
// The root command runs the dashboard. Its flags are bound into a viper
// instance on top of the config file and BWMON_* environment variables, so
// every dashboard setting can come from any of the three:
//
//	bwmon                       - monitor the auto-detected interface
//	bwmon -i eth0 -d 0.5 -s     - eth0, twice a second, decimal units
//	bwmon --host gateway        - read counters from a remote Linux host
//	bwmon interfaces            - list interfaces with their totals
//	bwmon config init|show|set  - manage ~/.config/bwmon/config.yaml
//	bwmon version               - build information
//
// Errors returned from commands are rendered by Execute and mapped to the
// process exit code.
package cli
