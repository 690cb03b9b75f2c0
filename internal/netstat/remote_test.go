package netstat

import (
	"testing"

	"github.com/rileyhilliard/bwmon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	stdout   string
	stderr   string
	exitCode int
	err      error
	cmds     []string
}

func (f *fakeExecutor) Exec(cmd string) ([]byte, []byte, int, error) {
	f.cmds = append(f.cmds, cmd)
	if f.err != nil {
		return nil, nil, -1, f.err
	}
	return []byte(f.stdout), []byte(f.stderr), f.exitCode, nil
}

func (f *fakeExecutor) GetHost() string { return "gateway" }

func TestRemoteReader(t *testing.T) {
	exec := &fakeExecutor{stdout: procNetDevFixture}
	r := NewRemoteReader(exec)

	c, err := r.ReadCounters("eth0")
	require.NoError(t, err)
	assert.Equal(t, Counters{RX: 9876543210, TX: 1234567890}, c)
	assert.Equal(t, []string{"cat '/proc/net/dev'"}, exec.cmds)
}

func TestRemoteReader_Failures(t *testing.T) {
	tests := []struct {
		name string
		exec *fakeExecutor
		code string
	}{
		{
			name: "transport error passes through",
			exec: &fakeExecutor{err: errors.New(errors.ErrSSH, "session closed", "")},
			code: errors.ErrSSH,
		},
		{
			name: "non-zero exit",
			exec: &fakeExecutor{stderr: "cat: /proc/net/dev: No such file", exitCode: 1},
			code: errors.ErrExec,
		},
		{
			name: "unparseable table",
			exec: &fakeExecutor{stdout: "h1\nh2\neth0: x 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0\n"},
			code: errors.ErrCounter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRemoteReader(tt.exec).ReadCounters("eth0")
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code))
		})
	}
}

func TestShellQuote(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/proc/net/dev", "'/proc/net/dev'"},
		{"/tmp/with space", "'/tmp/with space'"},
		{"it's", "'it'\\''s'"},
		{"$(reboot)", "'$(reboot)'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shellQuote(tt.input))
		})
	}
}
