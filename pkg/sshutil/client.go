// Package sshutil dials SSH hosts the way the ssh command line would:
// aliases and ports come from ~/.ssh/config, keys from the agent or the
// usual identity files, and host keys are checked against known_hosts.
package sshutil

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/kevinburke/ssh_config"
	"github.com/rileyhilliard/bwmon/internal/errors"
	"github.com/rileyhilliard/bwmon/internal/logger"
	"golang.org/x/crypto/ssh"
)

// Client wraps an SSH connection with the host it was dialed for.
type Client struct {
	*ssh.Client
	Host    string // alias or address as given
	Address string // resolved host:port
}

// Options control how Dial resolves and authenticates.
// Empty paths fall back to the files under ~/.ssh.
type Options struct {
	Timeout        time.Duration
	ConfigPath     string
	KnownHostsPath string
	// IdentityFiles are tried after the agent and any IdentityFile from
	// the ssh config. Nil means the default id_ed25519, id_rsa, id_ecdsa.
	IdentityFiles []string
	// InsecureIgnoreHostKey skips known_hosts verification.
	InsecureIgnoreHostKey bool
}

// DefaultOptions returns the options used by the bwmon command line.
func DefaultOptions() Options {
	return Options{Timeout: 10 * time.Second}
}

func (o Options) configPath() string {
	if o.ConfigPath != "" {
		return o.ConfigPath
	}
	return filepath.Join(homeDir(), ".ssh", "config")
}

func (o Options) knownHostsPath() string {
	if o.KnownHostsPath != "" {
		return o.KnownHostsPath
	}
	return filepath.Join(homeDir(), ".ssh", "known_hosts")
}

func (o Options) identityFiles() []string {
	if o.IdentityFiles != nil {
		return o.IdentityFiles
	}
	return []string{
		filepath.Join(homeDir(), ".ssh", "id_ed25519"),
		filepath.Join(homeDir(), ".ssh", "id_rsa"),
		filepath.Join(homeDir(), ".ssh", "id_ecdsa"),
	}
}

var matchWarningOnce sync.Once

// Dial connects to host, which may be an ssh config alias, a hostname,
// user@hostname or hostname:port.
func Dial(host string, opts Options) (*Client, error) {
	settings := resolveSSHSettings(host, opts.configPath())

	config, err := buildSSHConfig(settings, opts)
	if err != nil {
		var bwErr *errors.Error
		if stderrors.As(err, &bwErr) {
			return nil, err
		}
		return nil, errors.WrapWithCode(err, errors.ErrSSH,
			fmt.Sprintf("Couldn't set up SSH for '%s'", host),
			"Check your keys are loaded: ssh-add -l")
	}

	address := settings.address()
	conn, err := net.DialTimeout("tcp", address, opts.Timeout)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSSH,
			fmt.Sprintf("Can't reach '%s' at %s", host, address),
			suggestionForDialError(err))
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, address, config)
	if err != nil {
		conn.Close()

		var hostKeyErr *HostKeyMismatchError
		if stderrors.As(err, &hostKeyErr) {
			return nil, errors.New(errors.ErrSSH, hostKeyErr.Error(), hostKeyErr.Suggestion())
		}

		return nil, errors.WrapWithCode(err, errors.ErrSSH,
			fmt.Sprintf("SSH handshake with '%s' didn't go through", host),
			suggestionForHandshakeError(err, settings.encryptedKeys))
	}

	return &Client{
		Client:  ssh.NewClient(sshConn, chans, reqs),
		Host:    host,
		Address: address,
	}, nil
}

// Close closes the SSH connection.
func (c *Client) Close() error {
	if c.Client == nil {
		return nil
	}
	return c.Client.Close()
}

// GetHost returns the host or alias passed to Dial.
func (c *Client) GetHost() string {
	return c.Host
}

// sshSettings holds resolved connection parameters.
type sshSettings struct {
	hostname      string
	port          string
	user          string
	identityFile  string
	encryptedKeys []string
}

func (s *sshSettings) address() string {
	return net.JoinHostPort(s.hostname, s.port)
}

// resolveSSHSettings parses user@host:port and overlays the ssh config entry
// for host, if any. An explicit user wins over the config.
func resolveSSHSettings(host, configPath string) *sshSettings {
	settings := &sshSettings{
		port: "22",
		user: currentUser(),
	}

	explicitUser := false
	if atIdx := strings.Index(host, "@"); atIdx != -1 {
		settings.user = host[:atIdx]
		host = host[atIdx+1:]
		explicitUser = true
	}

	if colonIdx := strings.LastIndex(host, ":"); colonIdx != -1 {
		potentialPort := host[colonIdx+1:]
		if potentialPort != "" && strings.Trim(potentialPort, "0123456789") == "" {
			settings.port = potentialPort
			host = host[:colonIdx]
		}
	}

	settings.hostname = host

	// ssh_config cannot parse Match blocks, so only the part before the first one is read.
	content, matchLine, err := preprocessSSHConfig(configPath)
	if err != nil {
		return settings
	}

	cfg, err := ssh_config.Decode(bytes.NewReader(content))
	if err != nil {
		return settings
	}

	hostFound := false
	if hostname, _ := cfg.Get(host, "HostName"); hostname != "" {
		settings.hostname = hostname
		hostFound = true
	}
	if port, _ := cfg.Get(host, "Port"); port != "" {
		settings.port = port
		hostFound = true
	}
	if user, _ := cfg.Get(host, "User"); user != "" {
		if !explicitUser {
			settings.user = user
		}
		hostFound = true
	}
	if identity, _ := cfg.Get(host, "IdentityFile"); identity != "" {
		settings.identityFile = expandPath(identity)
		hostFound = true
	}

	if matchLine > 0 && !hostFound {
		matchWarningOnce.Do(func() {
			logger.Default().Warn(
				"host '%s' not found in SSH config (Match block at line %d may hide later entries)",
				host, matchLine)
		})
	}

	return settings
}

// preprocessSSHConfig returns the config content up to the first Match
// directive and the 1-indexed line of that directive (0 if none).
func preprocessSSHConfig(configPath string) ([]byte, int, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, 0, err
	}

	lines := strings.Split(string(content), "\n")
	var result []string
	matchLine := 0

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(trimmed), "match ") {
			matchLine = i + 1
			break
		}
		result = append(result, line)
	}

	return []byte(strings.Join(result, "\n")), matchLine, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.Getenv("HOME")
	}
	return home
}

func currentUser() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "root"
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

func suggestionForDialError(err error) string {
	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "connection refused"):
		return "Is SSH running on that box? Try: ssh <host>"
	case strings.Contains(errStr, "no route to host"), strings.Contains(errStr, "network is unreachable"):
		return "Can't route to the host. Check your network connection."
	case strings.Contains(errStr, "timeout"):
		return "Connection timed out. Host might be offline or blocked by a firewall."
	}
	return "Make sure the host is reachable: ping <host>"
}

func suggestionForHandshakeError(err error, encryptedKeys []string) string {
	errStr := err.Error()
	if strings.Contains(errStr, "unable to authenticate") || strings.Contains(errStr, "no supported methods") {
		if len(encryptedKeys) > 0 {
			return addKeysSuggestion("Your key(s) are encrypted. Add them to the agent:", encryptedKeys)
		}
		return "Auth failed. Check your keys are loaded: ssh-add -l"
	}
	if strings.Contains(errStr, "host key") {
		return "Host key issue. Try connecting manually first: ssh <host>"
	}
	return "Something went wrong during SSH setup. Try: ssh <host>"
}
