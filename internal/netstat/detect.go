package netstat

import (
	"net"

	"github.com/rileyhilliard/bwmon/internal/errors"
)

// Lister enumerates the local network interfaces.
type Lister func() ([]net.Interface, error)

// SystemLister lists interfaces through the net package.
func SystemLister() ([]net.Interface, error) {
	return net.Interfaces()
}

// DetectDefault returns the first interface that is up, running and not a
// loopback device.
func DetectDefault(list Lister) (string, error) {
	ifaces, err := list()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrIface,
			"Cannot enumerate network interfaces",
			"Pass the interface explicitly with -i.")
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagRunning == 0 {
			continue
		}
		return iface.Name, nil
	}
	return "", noInterface()
}

// DetectFromReader returns the first non-loopback interface listed by r.
// Used for remote hosts, where link flags are not available.
func DetectFromReader(r Reader) (string, error) {
	ifaces, err := r.Interfaces()
	if err != nil {
		return "", err
	}
	for _, iface := range ifaces {
		if isLoopbackName(iface.Name) {
			continue
		}
		return iface.Name, nil
	}
	return "", noInterface()
}

func isLoopbackName(name string) bool {
	return name == "lo" || name == "lo0"
}

func noInterface() error {
	return errors.New(errors.ErrIface,
		"No usable network interface found",
		"Bring an interface up or pass one explicitly with -i.")
}
