package netstat

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rileyhilliard/bwmon/internal/errors"
)

// DefaultProcPath is the kernel's interface statistics table.
const DefaultProcPath = "/proc/net/dev"

// ProcReader reads counters from a /proc/net/dev formatted file.
type ProcReader struct {
	Path string
}

// NewProcReader creates a ProcReader for DefaultProcPath.
func NewProcReader() *ProcReader {
	return &ProcReader{Path: DefaultProcPath}
}

// Interfaces returns every interface listed in the table.
func (r *ProcReader) Interfaces() ([]Interface, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrCounter,
			fmt.Sprintf("Cannot read %s", r.Path),
			"Check that procfs is mounted, or use --host to monitor a remote machine.")
	}
	ifaces, err := ParseProcNetDev(string(data))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrCounter,
			fmt.Sprintf("Cannot parse %s", r.Path), "")
	}
	return ifaces, nil
}

// ReadCounters returns the counters for the named interface.
func (r *ProcReader) ReadCounters(name string) (Counters, error) {
	ifaces, err := r.Interfaces()
	if err != nil {
		return Counters{}, err
	}
	return find(ifaces, name)
}

// ParseProcNetDev parses the contents of /proc/net/dev.
func ParseProcNetDev(procNetDev string) ([]Interface, error) {
	var interfaces []Interface
	scanner := bufio.NewScanner(strings.NewReader(procNetDev))

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Two header lines
		if lineNum <= 2 {
			continue
		}

		// "  iface: bytes packets errs drop fifo frame compressed multicast | bytes packets..."
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		name := strings.TrimSpace(parts[0])
		fields := strings.Fields(parts[1])

		// 8 receive + 8 transmit
		if len(fields) < 16 {
			continue
		}

		var vals [4]uint64
		for i, idx := range []int{0, 1, 8, 9} {
			v, err := strconv.ParseUint(fields[idx], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse field %d for %s: %w", idx, name, err)
			}
			vals[i] = v
		}

		interfaces = append(interfaces, Interface{
			Name:      name,
			Counters:  Counters{RX: vals[0], TX: vals[2]},
			RXPackets: vals[1],
			TXPackets: vals[3],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning /proc/net/dev: %w", err)
	}

	return interfaces, nil
}
