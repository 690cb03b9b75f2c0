package cli

import (
	"fmt"
	"io"
	"net"

	"github.com/rileyhilliard/bwmon/internal/netstat"
	"github.com/rileyhilliard/bwmon/internal/ui"
	"github.com/rileyhilliard/bwmon/internal/units"
	"github.com/spf13/cobra"
)

// interfacesCmd lists interfaces and their totals
var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List network interfaces and their byte and packet totals",
	Long: `List the interfaces bwmon can monitor, with cumulative byte and packet
counts. The interface picked by auto-detection is marked with *.

Examples:
  bwmon interfaces
  bwmon interfaces --si
  bwmon interfaces --host gateway`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if !cfg.Colors {
			ui.DisableColors()
		}

		reader, closeReader, err := openReader(cfg.Host)
		if err != nil {
			return err
		}
		defer closeReader()

		var list netstat.Lister
		if cfg.Host == "" {
			list = netstat.SystemLister
		}
		return listInterfaces(cmd.OutOrStdout(), reader, list, cfg.UnitSystem() == units.Decimal)
	},
}

func init() {
	interfacesCmd.Flags().BoolP("si", "s", false, "use decimal (SI) units instead of binary")
	interfacesCmd.Flags().BoolP("no-colors", "n", false, "disable colors")
	rootCmd.AddCommand(interfacesCmd)
}

// listInterfaces writes the interface table to w. When list is nil (remote
// hosts) link state is unknown and the default is the first non-loopback
// entry.
func listInterfaces(w io.Writer, reader netstat.Reader, list netstat.Lister, decimal bool) error {
	ifaces, err := reader.Interfaces()
	if err != nil {
		return err
	}

	state := map[string]string{}
	var defaultName string
	if list != nil {
		if sys, err := list(); err == nil {
			for _, iface := range sys {
				if iface.Flags&net.FlagUp != 0 {
					state[iface.Name] = "up"
				} else {
					state[iface.Name] = "down"
				}
			}
		}
		defaultName, _ = netstat.DetectDefault(list)
	} else {
		defaultName, _ = netstat.DetectFromReader(reader)
	}

	rows := make([]ui.InterfaceRow, len(ifaces))
	for i, iface := range ifaces {
		rows[i] = ui.InterfaceRow{
			Name:      iface.Name,
			Status:    state[iface.Name],
			Default:   iface.Name == defaultName,
			RXBytes:   iface.Counters.RX,
			TXBytes:   iface.Counters.TX,
			RXPackets: iface.RXPackets,
			TXPackets: iface.TXPackets,
		}
	}

	_, err = fmt.Fprintln(w, ui.RenderInterfaceTable(rows, decimal))
	return err
}
