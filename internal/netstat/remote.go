package netstat

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/bwmon/internal/errors"
)

// Executor runs a command on a remote host.
// sshutil.Client satisfies it.
type Executor interface {
	Exec(cmd string) (stdout, stderr []byte, exitCode int, err error)
	GetHost() string
}

// RemoteReader reads /proc/net/dev from a Linux host over SSH.
type RemoteReader struct {
	Client Executor
	Path   string
}

// NewRemoteReader creates a RemoteReader for DefaultProcPath on client's host.
func NewRemoteReader(client Executor) *RemoteReader {
	return &RemoteReader{Client: client, Path: DefaultProcPath}
}

// Interfaces returns every interface listed on the remote host.
func (r *RemoteReader) Interfaces() ([]Interface, error) {
	cmd := "cat " + shellQuote(r.Path)
	stdout, stderr, exitCode, err := r.Client.Exec(cmd)
	if err != nil {
		return nil, err
	}
	if exitCode != 0 {
		return nil, errors.New(errors.ErrExec,
			fmt.Sprintf("%s exited with code %d on %s", cmd, exitCode, r.Client.GetHost()),
			strings.TrimSpace(string(stderr)))
	}
	ifaces, err := ParseProcNetDev(string(stdout))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrCounter,
			fmt.Sprintf("Cannot parse %s from %s", r.Path, r.Client.GetHost()),
			"Remote monitoring needs a Linux host with procfs.")
	}
	return ifaces, nil
}

// ReadCounters returns the counters for the named interface.
func (r *RemoteReader) ReadCounters(name string) (Counters, error) {
	ifaces, err := r.Interfaces()
	if err != nil {
		return Counters{}, err
	}
	return find(ifaces, name)
}

// shellQuote single-quotes s for the remote shell, escaping embedded quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
