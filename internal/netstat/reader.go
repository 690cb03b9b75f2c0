// Package netstat reads cumulative per-interface byte counters.
//
// Three sources are provided: the Linux /proc/net/dev table, the BSD/macOS
// `netstat -ibn` listing, and /proc/net/dev read from a remote host over
// SSH. All of them satisfy Reader, so the dashboard does not care where the
// numbers come from.
package netstat

import (
	"fmt"
	"runtime"

	"github.com/rileyhilliard/bwmon/internal/errors"
)

// Counters holds the cumulative byte totals for one interface.
type Counters struct {
	RX uint64
	TX uint64
}

// Interface is one row of an interface table.
type Interface struct {
	Name      string
	Counters  Counters
	RXPackets uint64
	TXPackets uint64
}

// Reader lists interfaces and reads their counters.
// ReadCounters returns an error rather than partial data.
type Reader interface {
	Interfaces() ([]Interface, error)
	ReadCounters(name string) (Counters, error)
}

// Local returns the Reader appropriate for the running OS.
func Local() Reader {
	if runtime.GOOS == "linux" {
		return NewProcReader()
	}
	return NewNetstatReader()
}

// find picks name out of a parsed table.
func find(ifaces []Interface, name string) (Counters, error) {
	for _, iface := range ifaces {
		if iface.Name == name {
			return iface.Counters, nil
		}
	}
	return Counters{}, errors.New(errors.ErrIface,
		fmt.Sprintf("Interface %s not found", name),
		"Run 'bwmon interfaces' to list the available interfaces.")
}
