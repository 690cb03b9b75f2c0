package cli

import (
	"bytes"
	"net"
	"testing"

	"github.com/rileyhilliard/bwmon/internal/netstat"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// fakeReader serves a fixed interface table.
type fakeReader struct {
	ifaces []netstat.Interface
	err    error
}

func (f *fakeReader) Interfaces() ([]netstat.Interface, error) {
	return f.ifaces, f.err
}

func (f *fakeReader) ReadCounters(name string) (netstat.Counters, error) {
	if f.err != nil {
		return netstat.Counters{}, f.err
	}
	for _, iface := range f.ifaces {
		if iface.Name == name {
			return iface.Counters, nil
		}
	}
	return netstat.Counters{}, nil
}

func testInterfaces() []netstat.Interface {
	return []netstat.Interface{
		{Name: "lo", Counters: netstat.Counters{RX: 4096, TX: 4096}, RXPackets: 10, TXPackets: 10},
		{Name: "eth0", Counters: netstat.Counters{RX: 3 << 20, TX: 1536}, RXPackets: 2345678, TXPackets: 901},
		{Name: "wlan0"},
	}
}

func staticLister(ifaces ...net.Interface) netstat.Lister {
	return func() ([]net.Interface, error) { return ifaces, nil }
}

// isolateEnv keeps the user's config file and BWMON_* variables out of a test.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"INTERFACE", "DELAY", "UNITS", "SCALE", "PEAK", "LINES", "COLORS", "HOST", "METRICS_ADDR", "LOG_FILE"} {
		t.Setenv("BWMON_"+key, "")
	}
	return home
}

// dashboardCmd builds a throwaway command carrying the root flags.
func dashboardCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "bwmon"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("host", "", "")
	addDashboardFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

// execute runs the real root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}
