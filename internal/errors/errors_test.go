package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodesUnique(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrIface,
		ErrCounter,
		ErrTerminal,
		ErrSSH,
		ErrExec,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code)
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Delay must be at least 0.1s",
			suggestion: "Pass a larger value to --delay",
		},
		{
			name:       "interface error",
			code:       ErrIface,
			message:    "Interface eth9 not found",
			suggestion: "Run 'bwmon interfaces' to list candidates",
		},
		{
			name:       "terminal error",
			code:       ErrTerminal,
			message:    "Standard output is not a terminal",
			suggestion: "Run bwmon from an interactive shell",
		},
		{
			name:       "ssh error",
			code:       ErrSSH,
			message:    "Cannot connect to gateway",
			suggestion: "Check your ~/.ssh/config entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "message and suggestion",
			err:           New(ErrConfig, "Unknown scale mode", "Use zero-max, min-max or sync"),
			expectedParts: []string{"✗ Unknown scale mode", "Use zero-max, min-max or sync"},
		},
		{
			name:          "wrapped cause",
			err:           WrapWithCode(fmt.Errorf("open /proc/net/dev: no such file"), ErrCounter, "Cannot read counters", ""),
			expectedParts: []string{"Cannot read counters", "no such file"},
		},
		{
			name:          "no suggestion",
			err:           New(ErrExec, "netstat failed", ""),
			expectedParts: []string{"netstat failed"},
			notExpected:   []string{"\n\n  \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()
			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("permission denied"),
		ErrCounter,
		"Cannot read counters for wlan0",
		"Check that /proc is mounted",
	)

	lines := strings.Split(err.Error(), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "✗ Cannot read counters for wlan0", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "  permission denied", lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "  Check that /proc is mounted", lines[4])
}

func TestWrap(t *testing.T) {
	cause := errors.New("short read")
	wrapped := Wrap(cause, "Counter read failed")

	assert.Equal(t, ErrCounter, wrapped.Code)
	assert.Equal(t, cause, wrapped.Cause)
	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, cause, wrapped.Unwrap())
}

func TestIsCode(t *testing.T) {
	err := New(ErrIface, "No usable interface", "")

	assert.True(t, IsCode(err, ErrIface))
	assert.False(t, IsCode(err, ErrSSH))
	assert.True(t, IsCode(fmt.Errorf("startup: %w", err), ErrIface))
	assert.False(t, IsCode(errors.New("plain"), ErrIface))
	assert.False(t, IsCode(nil, ErrIface))
}

func TestExitError(t *testing.T) {
	code, ok := GetExitCode(NewExitError(2))
	assert.True(t, ok)
	assert.Equal(t, 2, code)

	code, ok = GetExitCode(fmt.Errorf("wrapped: %w", NewExitError(3)))
	assert.True(t, ok)
	assert.Equal(t, 3, code)

	_, ok = GetExitCode(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, "exit code 2", NewExitError(2).Error())
}
