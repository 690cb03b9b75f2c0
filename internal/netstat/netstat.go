package netstat

import (
	"bufio"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rileyhilliard/bwmon/internal/errors"
)

// Runner executes a command and returns its standard output.
type Runner func(name string, args ...string) ([]byte, error)

func execRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// NetstatReader reads counters from `netstat -ibn`, for BSD and macOS hosts.
type NetstatReader struct {
	Run Runner
}

// NewNetstatReader creates a NetstatReader that shells out to netstat.
func NewNetstatReader() *NetstatReader {
	return &NetstatReader{Run: execRunner}
}

// Interfaces returns every interface with a link-level row.
func (r *NetstatReader) Interfaces() ([]Interface, error) {
	out, err := r.Run("netstat", "-ibn")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrExec,
			"netstat -ibn failed",
			"Make sure netstat is installed and on your PATH.")
	}
	ifaces, err := ParseNetstat(string(out))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrCounter,
			"Cannot parse netstat output", "")
	}
	return ifaces, nil
}

// ReadCounters returns the counters for the named interface.
func (r *NetstatReader) ReadCounters(name string) (Counters, error) {
	ifaces, err := r.Interfaces()
	if err != nil {
		return Counters{}, err
	}
	return find(ifaces, name)
}

// ParseNetstat parses `netstat -ibn` output. Only the first <Link#N> row of
// each interface is used; it carries the totals for every protocol.
//
//	Name  Mtu   Network       Address            Ipkts Ierrs     Ibytes    Opkts Oerrs     Obytes  Coll
//	en0   1500  <Link#4>      xx:xx:xx:xx:xx:xx  12345     0   12345678    67890     0    9876543     0
func ParseNetstat(output string) ([]Interface, error) {
	var interfaces []Interface
	scanner := bufio.NewScanner(strings.NewReader(output))

	headerSkipped := false
	seen := make(map[string]bool)

	for scanner.Scan() {
		line := scanner.Text()

		if !headerSkipped {
			if strings.HasPrefix(line, "Name") {
				headerSkipped = true
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 8 {
			continue
		}

		name := strings.TrimSuffix(fields[0], "*")
		if seen[name] {
			continue
		}

		linkCol := -1
		for i, f := range fields {
			if strings.HasPrefix(f, "<Link#") {
				linkCol = i
				break
			}
		}
		if linkCol < 0 {
			continue
		}

		// Interfaces without a hardware address (lo0, utun) have no Address column.
		var numeric []uint64
		for _, f := range fields[linkCol+1:] {
			v, err := strconv.ParseUint(f, 10, 64)
			if err == nil {
				numeric = append(numeric, v)
			}
		}

		// Ipkts Ierrs Ibytes Opkts Oerrs Obytes [Coll]
		if len(numeric) < 6 {
			return nil, fmt.Errorf("too few counter columns for %s: %q", name, line)
		}
		seen[name] = true

		interfaces = append(interfaces, Interface{
			Name:      name,
			Counters:  Counters{RX: numeric[2], TX: numeric[5]},
			RXPackets: numeric[0],
			TXPackets: numeric[3],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning netstat output: %w", err)
	}

	return interfaces, nil
}
