package sshutil

// SSHClient is the subset of Client used for remote counter reads.
type SSHClient interface {
	// Exec runs a command and returns stdout, stderr, and exit code.
	Exec(cmd string) (stdout, stderr []byte, exitCode int, err error)

	// GetHost returns the host or alias used to connect.
	GetHost() string

	Close() error
}

var _ SSHClient = (*Client)(nil)
