package sshutil

import (
	"bytes"
	stderrors "errors"
	"fmt"

	"github.com/rileyhilliard/bwmon/internal/errors"
	"golang.org/x/crypto/ssh"
)

// Exec runs cmd on the remote host.
// exitCode is -1 when the command could not be run at all; a non-zero
// exit with a nil error means it ran and failed.
func (c *Client) Exec(cmd string) (stdout, stderr []byte, exitCode int, err error) {
	session, err := c.Client.NewSession()
	if err != nil {
		return nil, nil, -1, errors.WrapWithCode(err, errors.ErrSSH,
			"Failed to create SSH session",
			"Connection may have been closed. Try reconnecting.")
	}
	defer session.Close()

	var stdoutBuf, stderrBuf bytes.Buffer
	session.Stdout = &stdoutBuf
	session.Stderr = &stderrBuf

	if err := session.Run(cmd); err != nil {
		var exitErr *ssh.ExitError
		if stderrors.As(err, &exitErr) {
			return stdoutBuf.Bytes(), stderrBuf.Bytes(), exitErr.ExitStatus(), nil
		}
		return nil, nil, -1, errors.WrapWithCode(err, errors.ErrExec,
			fmt.Sprintf("Failed to execute command: %s", cmd),
			"Check if the command exists on the remote host.")
	}

	return stdoutBuf.Bytes(), stderrBuf.Bytes(), 0, nil
}
